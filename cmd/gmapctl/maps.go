package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gmap/store"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List maps stored in a SQLite store",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _ := cmd.Flags().GetString("db")
		if db == "" {
			return fmt.Errorf("--db is required")
		}
		s, err := store.Open(db)
		if err != nil {
			return err
		}
		defer s.Close()

		names, err := s.ListMaps(context.Background())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}

		return nil
	},
}

func init() {
	mapsCmd.Flags().String("db", "", "SQLite store to list")
	rootCmd.AddCommand(mapsCmd)
}
