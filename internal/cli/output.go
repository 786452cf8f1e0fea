package cli

import (
	"fmt"
	"os"
)

// PrintError prints an error message to stderr.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// PrintInfo prints an informational message to stderr, so it never mixes
// with share or secret bytes written to stdout.
func PrintInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
