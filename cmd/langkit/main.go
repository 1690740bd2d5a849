// Package main provides the CLI entrypoint for langkit.
//
// langkit applies the lang object helpers to YAML documents:
//   - get and set values by dotted path
//   - merge documents deeply or shallowly
//   - overlay one document on another through delegation
//   - list own or inherited keys
package main

import (
	"fmt"
	"os"

	"langkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
