// Package main provides the entry point for the Life Minus Work readiness
// check server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readiness_agent",
	Short: "Life Minus Work readiness check server",
	Long:  "Readiness check scores a Likert questionnaire across six life themes and produces a personalized PDF reflection report behind an email verification gate.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
