package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/quickref/pkg/errors"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Structured errors were already reported with context by the
		// command itself; only surface the rest here.
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
