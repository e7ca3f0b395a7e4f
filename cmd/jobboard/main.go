// Package main provides the entry point for the accessibility job board.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "Accessibility Job Board server and tools",
	Long:  "Job board for accessibility roles: an HTTP API for submitting and reading postings, server-rendered detail pages, and an interactive multi-step posting flow.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
