package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagSource string
	flagFail   bool
)

var rootCmd = &cobra.Command{
	Use:   "hackstories",
	Short: "TUI Hacker News stories browser",
	Long: `hackstories is a terminal stories browser: search filters the list by
title, stories can be dismissed, and the list can be restored. The search
term persists across runs.`,
	RunE: runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagSource, "source", "", "override story source (simulated, feed)")
	rootCmd.Flags().BoolVar(&flagFail, "fail", false, "make the simulated load fail")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hackstories %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
