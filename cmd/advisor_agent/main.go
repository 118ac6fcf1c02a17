// Package main provides the entry point for the EduGuide college
// advisor CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advisor_agent",
	Short: "EduGuide college advisor",
	Long: "EduGuide answers college-planning questions: it builds an advisee profile " +
		"from conversation, ranks a curated college catalog against it, and optionally " +
		"enriches replies with live research and a generative restyle.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
