package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gmap/codec"
	"github.com/katalvlaran/gmap/core"
	"github.com/katalvlaran/gmap/store"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Construct a map and write its flat JSON form",
	Long: `Build a generalized map from --shape (edge, polygon, tetrahedron,
cube, square-grid, hex-grid) or from a YAML scene file, then write the
flat JSON form to --out and/or snapshot it into a SQLite store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd)
	},
}

func init() {
	buildCmd.Flags().String("shape", "", "shape to build (edge|polygon|tetrahedron|cube|square-grid|hex-grid)")
	buildCmd.Flags().Int("sides", 4, "polygon side count")
	buildCmd.Flags().Int("rows", 2, "grid rows")
	buildCmd.Flags().Int("cols", 2, "grid columns")
	buildCmd.Flags().String("scene", "", "YAML scene file to build instead of --shape")
	buildCmd.Flags().String("out", "", "output file for the flat JSON form (default stdout)")
	buildCmd.Flags().String("db", "", "SQLite store to snapshot the map into")
	buildCmd.Flags().String("name", "", "map name inside the store (requires --db)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command) error {
	shape, _ := cmd.Flags().GetString("shape")
	scenePath, _ := cmd.Flags().GetString("scene")

	var (
		m   *core.DartMap
		err error
	)
	switch {
	case scenePath != "":
		var sc *Scene
		if sc, err = loadScene(scenePath); err != nil {
			return err
		}
		m, err = buildScene(sc)
	case shape != "":
		sides, _ := cmd.Flags().GetInt("sides")
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")
		m, err = buildNamedShape(shape, sides, rows, cols)
	default:
		return fmt.Errorf("either --shape or --scene is required")
	}
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	logger.Debug().Int("darts", m.NDarts()).Int("dimension", m.Dimension()).Msg("map built")

	blob, err := codec.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err = os.WriteFile(out, blob, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info().Str("file", out).Msg("map written")
	} else {
		fmt.Fprintln(os.Stdout, string(blob))
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return fmt.Errorf("--db requires --name")
		}
		s, err := store.Open(db)
		if err != nil {
			return err
		}
		defer s.Close()
		if err = s.SaveMap(context.Background(), name, m); err != nil {
			return err
		}
		logger.Info().Str("db", db).Str("name", name).Msg("map stored")
	}

	return nil
}
