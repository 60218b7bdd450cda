package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jomazi/libtvg/search"
)

var componentsCmd = &cobra.Command{
	Use:   "components FILE",
	Short: "Show connected component count and sizes (undirected graphs)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		defer g.Release()

		labels, count, err := search.ConnectedComponents(g)
		if err != nil {
			return err
		}
		defer labels.Release()

		sizes := make(map[uint64]uint64)
		labels.ForEach(func(_ uint64, id float32) bool {
			sizes[uint64(id)]++

			return true
		})

		printRow("Components", "%d", count)

		ids := make([]uint64, 0, len(sizes))
		for id := range sizes {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			fmt.Printf("%s %d nodes\n", dimStyle.Render(fmt.Sprintf("  #%-9d", id)), sizes[id])
		}

		return nil
	},
}
