package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "evsched",
	Short: "Daily activity schedule solver for a single EV",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(solveCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
