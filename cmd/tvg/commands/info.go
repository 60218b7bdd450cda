package commands

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/jomazi/libtvg/sparse"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Show header fields and summary statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		defer g.Release()

		kind := "undirected"
		if g.Directed() {
			kind = "directed"
		}

		minWeight := float32(math.Inf(1))
		maxWeight := float32(math.Inf(-1))
		g.ForEach(func(e sparse.Edge) bool {
			if e.Weight < minWeight {
				minWeight = e.Weight
			}
			if e.Weight > maxWeight {
				maxWeight = e.Weight
			}

			return true
		})

		nodes := g.Nodes()
		defer nodes.Release()

		bitsSource, bitsTarget := g.Bits()

		printRow("File", "%s", args[0])
		printRow("Kind", "%s (positive=%v)", kind, g.Positive())
		printRow("Partition", "%d source bits, %d target bits", bitsSource, bitsTarget)
		printRow("Edges", "%d", g.NumEdges())
		printRow("Nodes", "%d", nodes.NumEntries())
		if g.Empty() {
			printRow("Weights", "%s", dimStyle.Render("none"))
		} else {
			printRow("Weights", "sum=%.6g min=%.6g max=%.6g", g.SumWeights(), minWeight, maxWeight)
		}
		printRow("Memory", "%d bytes", g.MemoryUsage())

		return nil
	},
}
