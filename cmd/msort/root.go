package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/katalvlaran/msort/mergesort"
	"github.com/spf13/cobra"
)

const banner = "=== msort: stable merge sort demo ==="

// newRootCmd builds the msort command.  With trailing arguments it runs a
// single batch sort over them; without arguments it runs the interactive
// prompt loop on stdin.
func newRootCmd() *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "msort [integers...]",
		Short: "Sort integers with a stable merge sort",
		Long: `msort reads whitespace- or comma-delimited integers, sorts them with a
stable merge sort, verifies the result, and prints it together with the
elapsed sorting time.

Pass the integers as arguments for a single batch run, or pass none to
enter an interactive loop that prompts for a line of input and asks
whether to sort another.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				values, err := parseInts(strings.Join(args, " "))
				if err != nil {
					return err
				}

				return sortAndReport(out, values, desc)
			}

			return runInteractive(cmd.InOrStdin(), out, desc)
		},
	}
	cmd.Flags().BoolVar(&desc, "desc", false, "additionally sort and print in descending order")

	return cmd
}

// parseInts splits line on whitespace and commas and parses every token as
// a base-10 integer.  An empty line yields an empty, valid input.
func parseInts(line string) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("msort: %q is not an integer", field)
		}
		values = append(values, v)
	}

	return values, nil
}

// sortAndReport sorts values ascending (and descending when desc is set),
// verifies each pass, and prints the before/after sequences with timing.
func sortAndReport(w io.Writer, values []int, desc bool) error {
	fmt.Fprintln(w, "Input:     ", values)

	start := time.Now()
	if err := mergesort.SortFunc(values, mergesort.Ascending[int]()); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintln(w, "Ascending: ", values)
	fmt.Fprintf(w, "Verified:   %v (%d elements in %s)\n",
		mergesort.IsSortedFunc(values, mergesort.Ascending[int]()), len(values), elapsed)

	if desc {
		if err := mergesort.SortFunc(values, mergesort.Descending[int]()); err != nil {
			return err
		}
		fmt.Fprintln(w, "Descending:", values)
	}

	return nil
}

// runInteractive prompts for lines of integers until the user declines to
// continue or the input ends.  A malformed token aborts the whole run.
func runInteractive(in io.Reader, w io.Writer, desc bool) error {
	fmt.Fprintln(w, banner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, "Enter integers (whitespace or comma separated): ")
		if !scanner.Scan() {
			break
		}
		values, err := parseInts(scanner.Text())
		if err != nil {
			return err
		}
		if err = sortAndReport(w, values, desc); err != nil {
			return err
		}

		fmt.Fprint(w, "Sort another? (y/n): ")
		if !scanner.Scan() {
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			break
		}
	}
	fmt.Fprintln(w, "Bye.")

	return scanner.Err()
}
