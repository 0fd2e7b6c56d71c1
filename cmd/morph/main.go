// Package main provides the morph binary: a console for driving a player
// through transformations on a small level.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "morph",
	Short: "Player transformation simulator",
	Long: `morph loads forms, items, buffs and a level from content files and
runs console commands against one player: transform, wear, wait, and so on.`,
	SilenceUsage: true,
}

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file (defaults and MORPH_* environment when empty)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(formsCmd)
}
