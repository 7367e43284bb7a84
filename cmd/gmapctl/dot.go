package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gmap/codec"
	"github.com/katalvlaran/gmap/core"
)

var dotCmd = &cobra.Command{
	Use:   "dot FILE",
	Short: "Export a map's vertex/edge incidence graph as Graphviz",
	Long: `Load a flat JSON map and print its vertices and edges as an
undirected Graphviz graph: one node per 0-cell, one edge per 1-cell.`,
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
		fmt.Print(graphviz(m))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
}

// graphviz renders the vertex/edge incidence graph of m in dot syntax.
func graphviz(m *core.DartMap) string {
	// Number every vertex cell, marking each member dart with the number.
	vertices := make(map[core.Dart]int, m.NDarts())
	for n, cell := range core.AllCells(m, 0) {
		for _, d := range cell {
			vertices[d] = n
		}
	}

	var b strings.Builder
	b.WriteString("graph gmap {\n  node[shape=point];\n")
	for _, e := range core.OneDartPerCell(m, 1) {
		fmt.Fprintf(&b, "  %d -- %d;\n", vertices[e], vertices[m.Alpha(e, 0)])
	}
	b.WriteString("}\n")

	return b.String()
}
