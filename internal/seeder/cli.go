package seeder

import (
	"fmt"
	"os"

	"github.com/gridironlabs/draftboard/pkg/logger"
)

// SetupLogging initializes the shared logger for the CLI.
func SetupLogging() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the seeding tool.
func ShowHelp() {
	os.Stdout.WriteString(`Draftboard Seeder
=================

Seeds a running draftboard service with a generated player pool.

Usage:
  go run cmd/seed-players/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9090")
  -players int
        Number of players to generate and import (default 300)
  -draft int
        Number of top-projected players to draft after import (default 0)
  -teams int
        League size pushed to /settings (default 12)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Also write the generated CSV to this file
  -verbose
        Log every drafted player
  -help
        Show help

Examples:
  # Seed 300 players into a fresh league
  go run cmd/seed-players/main.go

  # Simulate the first three rounds of a 10-team draft
  go run cmd/seed-players/main.go -teams 10 -draft 30
`)
}
