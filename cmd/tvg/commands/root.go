// Package commands implements the tvg CLI subcommands.
package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jomazi/libtvg/graph"
)

// Terminal styles shared by all subcommands.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tvg",
	Short: "Inspect binary graph files",
	Long: `tvg - A command line interface for sparse weighted graph files.

Reads graphs in the fixed-layout binary format and answers the common
read queries without writing any code:

Examples:
  # Show header fields and summary statistics
  tvg info snapshot.graph

  # The 10 heaviest edges, ties at the boundary included
  tvg top snapshot.graph -k 10

  # Shortest path length between two nodes
  tvg distance snapshot.graph 17 42 --weight

  # Connected components of an undirected graph
  tvg components snapshot.graph
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(componentsCmd)
}

// loadGraph reads the graph file named by the first positional argument.
func loadGraph(path string) (*graph.Graph, error) {
	g, err := graph.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// printRow prints one aligned label/value row.
func printRow(label string, format string, args ...any) {
	fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", label)), fmt.Sprintf(format, args...))
}
