// Package main provides the tvg CLI tool for inspecting binary graph
// files.
//
// Usage:
//
//	tvg <command> FILE [flags]
//
// Commands:
//
//	info       - header fields, edge/node counts, weight statistics
//	top        - top-k edges by weight (tie-inclusive)
//	distance   - shortest distance between two nodes (hops or weight)
//	components - connected component count and sizes
package main

import (
	"fmt"
	"os"

	"github.com/jomazi/libtvg/cmd/tvg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
