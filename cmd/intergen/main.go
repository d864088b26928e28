// Command intergen generates random interactions over a signature and
// writes the distinct ones to a folder or a badger database.
//
//	intergen generate sig.yaml --num-ints 50 --max-depth 5 --min-symbols 10
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
