// Command flattree encodes JSON tree documents into flat encodings, stores
// them in a blob store and queries them by value path.
package main

import (
	"fmt"
	"os"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
