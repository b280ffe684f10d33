// Package main provides the entry point for the weekly report stub generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weekly_stubs",
	Short: "Generate weekly report stubs for Hugo",
	Long: "weekly_stubs pre-generates empty weekly report pages (front matter plus a templated body) " +
		"under blog/content/<lang>/weekly/ for every registered language, skipping files that already exist.",
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
