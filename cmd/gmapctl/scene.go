package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gmap/core"
	"github.com/katalvlaran/gmap/grid"
)

// Scene is the YAML description of a map to build: a dimension and a
// list of disjoint shapes created on one map in order.
//
//	dimension: 2
//	shapes:
//	  - kind: polygon
//	    sides: 5
//	  - kind: cube
type Scene struct {
	Dimension int          `yaml:"dimension"`
	Shapes    []SceneShape `yaml:"shapes"`
}

// SceneShape is one shape entry of a Scene.
type SceneShape struct {
	// Kind is one of edge, polygon, tetrahedron, cube.
	Kind string `yaml:"kind"`
	// Sides is the polygon side count (polygon only).
	Sides int `yaml:"sides"`
}

// loadScene reads and parses a Scene YAML file.
func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var sc Scene
	if err = yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if len(sc.Shapes) == 0 {
		return nil, fmt.Errorf("scene %s declares no shapes", path)
	}

	return &sc, nil
}

// buildScene constructs the scene's map.
func buildScene(sc *Scene) (*core.DartMap, error) {
	m, err := core.NewDartMap(sc.Dimension)
	if err != nil {
		return nil, err
	}
	for k, sh := range sc.Shapes {
		if err = buildShape(m, sh); err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", k, sh.Kind, err)
		}
	}

	return m, nil
}

func buildShape(m *core.DartMap, sh SceneShape) error {
	var err error
	switch sh.Kind {
	case "edge":
		m.MakeEdge()
	case "polygon":
		_, err = m.MakePolygon(sh.Sides)
	case "tetrahedron":
		_, err = m.MakeTetrahedron()
	case "cube":
		_, err = m.MakeCube()
	default:
		err = fmt.Errorf("unknown shape kind %q", sh.Kind)
	}

	return err
}

// buildNamedShape constructs a single standalone shape by name, as
// used by `gmapctl build --shape`. Grids build whole maps of their
// own, so they are handled here rather than in buildShape.
func buildNamedShape(shape string, sides, rows, cols int) (*core.DartMap, error) {
	switch shape {
	case "square-grid":
		m, _, err := grid.NewSquareMap(rows, cols)

		return m, err
	case "hex-grid":
		m, _, err := grid.NewHexMap(rows, cols)

		return m, err
	default:
		m, err := core.NewDartMap(2)
		if err != nil {
			return nil, err
		}
		if err = buildShape(m, SceneShape{Kind: shape, Sides: sides}); err != nil {
			return nil, err
		}

		return m, nil
	}
}
