package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topK uint64

var topCmd = &cobra.Command{
	Use:   "top FILE",
	Short: "Show the k heaviest edges (ties at the boundary included)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		defer g.Release()

		edges := g.TopEdges(topK)
		if len(edges) == 0 {
			fmt.Println(dimStyle.Render("no edges"))

			return nil
		}

		fmt.Printf("%s\n", labelStyle.Render(fmt.Sprintf("%-20s %-20s %s", "SOURCE", "TARGET", "WEIGHT")))
		for _, e := range edges {
			fmt.Printf("%-20d %-20d %.6g\n", e.Source, e.Target, e.Weight)
		}
		if uint64(len(edges)) > topK {
			fmt.Println(dimStyle.Render(fmt.Sprintf("(%d extra edges tied with the %d-th weight)",
				uint64(len(edges))-topK, topK)))
		}

		return nil
	},
}

func init() {
	topCmd.Flags().Uint64VarP(&topK, "top", "k", 10, "number of edges to show")
}
