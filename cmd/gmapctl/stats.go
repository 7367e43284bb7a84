package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gmap/codec"
	"github.com/katalvlaran/gmap/core"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Report cell counts of a flat JSON map",
	Long: `Load a flat JSON map and print the number of cells at every
dimension: vertices, edges, faces, and so on up to the map dimension,
plus connected components.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		m, err := codec.UnmarshalMap(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		fmt.Printf("dimension: %d\n", m.Dimension())
		fmt.Printf("darts:     %d\n", m.NDarts())
		for i := 0; i <= m.Dimension(); i++ {
			fmt.Printf("%d-cells:   %d\n", i, len(core.OneDartPerCell(m, i)))
		}
		fmt.Printf("components: %d\n", len(core.OneDartPerOrbit(m, core.AlphasAll)))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
