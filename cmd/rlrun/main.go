// SPDX-License-Identifier: MIT

// Command rlrun works with graded values from the command line.
//
//	rlrun batch -i inputs.txt -c "python3 program.py" [-n N] [--timeout 30s]
//	rlrun lift --op + a.txt b.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
