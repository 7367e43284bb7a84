package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the process-wide structured logger; configured in
// initLogger once flags are parsed.
var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "gmapctl",
	Short: "gmapctl works with generalized combinatorial maps",
	Long: `gmapctl builds generalized combinatorial maps (polygons, platonic
solids, square and hex grids), validates their flat JSON form, reports
cell statistics, and exports incidence graphs for Graphviz.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(cmd)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func initLogger(cmd *cobra.Command) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger = zerolog.New(output).With().Timestamp().Str("app", "gmapctl").Logger()
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	} else {
		logger = logger.Level(zerolog.DebugLevel)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}
