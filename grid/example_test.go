package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gmap/core"
	"github.com/katalvlaran/gmap/grid"
)

// A procedural grid computes its topology from coordinates alone: no
// construction cost, any size.
func ExampleGrid() {
	g, _ := grid.New(100, 100)

	d, _ := g.SquareAt(41, 6)
	fmt.Println("darts:", g.NDarts())
	fmt.Println("face of anchor:", len(core.Orbit(g, d, core.AlphasFace)))
	y, x := g.VertexLoc(d)
	fmt.Printf("anchor vertex: (%d, %d)\n", y, x)
	// Output:
	// darts: 80000
	// face of anchor: 8
	// anchor vertex: (41, 6)
}

// An explicit grid is a mutable DartMap: the starting point for
// further sewing, labeled through an OrbitDict.
func ExampleNewSquareMap() {
	g, squares, _ := grid.NewSquareMap(2, 2)
	pos := grid.VertexPositions(g, squares)

	v, _ := pos.Get(core.Al(g, squares[1][1], 0, 1, 0))
	fmt.Println("southeast vertex:", v.(grid.XY))
	fmt.Println("vertices:", len(pos.Darts(g)))
	// Output:
	// southeast vertex: {2 2}
	// vertices: 9
}
