// Command dupfind scans one or more directory trees and reports groups of
// byte-identical files, using a three-stage parallel filtering pipeline:
// size grouping, head+tail partial hashing, and full streaming hash
// confirmation.
package main

import (
	"fmt"
	"os"

	"dupfind/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dupfind:", err)
		os.Exit(1)
	}
}
