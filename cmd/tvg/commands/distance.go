package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jomazi/libtvg/search"
)

var distanceByWeight bool

var distanceCmd = &cobra.Command{
	Use:   "distance FILE SOURCE TARGET",
	Short: "Show the shortest distance between two nodes",
	Long: `Show the shortest distance between two nodes.

By default the distance is the minimum number of edges on a path; with
--weight it is the minimum cumulative edge weight (Dijkstra, weights must
be non-negative).`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid source node %q: %w", args[1], err)
		}
		target, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid target node %q: %w", args[2], err)
		}

		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		defer g.Release()

		if distanceByWeight {
			weight, err := search.DistanceWeight(g, source, target)
			if errors.Is(err, search.ErrUnreachable) {
				fmt.Println(dimStyle.Render("unreachable"))

				return nil
			}
			if err != nil {
				return err
			}
			printRow("Distance", "%.6g (cumulative weight)", weight)

			return nil
		}

		hops, err := search.DistanceHops(g, source, target)
		if errors.Is(err, search.ErrUnreachable) {
			fmt.Println(dimStyle.Render("unreachable"))

			return nil
		}
		if err != nil {
			return err
		}
		printRow("Distance", "%d (hops)", hops)

		return nil
	},
}

func init() {
	distanceCmd.Flags().BoolVar(&distanceByWeight, "weight", false, "measure by cumulative weight instead of hop count")
}
