// Command msort is the interactive front end for the mergesort package:
// it reads integers, sorts them ascending (and optionally descending),
// verifies the result and prints it with timing.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
