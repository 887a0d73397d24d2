// Package main provides the CLI entry point for jig.
package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"jig/internal/cmd"
)

func main() {
	// Optional per-project .env with JIRA_URL / JIRA_EMAIL / JIRA_API_TOKEN.
	_ = godotenv.Load()
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".config", "jig", ".env"))
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
