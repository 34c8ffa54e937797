package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crittersort",
	Short: "Sort two herds of critters with a single threshold",
	Long: "Critter Sorter: a terminal playground for one-dimensional threshold classification.\n" +
		"Two classes of critters are stacked along a number line; slide the threshold and watch the score.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("scenarios", "", "Path to a YAML scenario file merged over the built-in presets")
	pf.Uint64("seed", 0, "Random seed for critter generation (0 picks one)")
	pf.String("score-set", "full", "Points the scoreboard counts: full or kept")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-file", "", "Write logs to this file")
	pf.Bool("log-json", false, "Log as JSON lines")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
