package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gridironlabs/draftboard/internal/seeder"
)

// Default configuration constants.
const (
	defaultNumPlayers = 300
	defaultTeams      = 12
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9090", "Base URL of the service")
		numPlayers = flag.Int("players", defaultNumPlayers, "Number of players to generate and import")
		draftTop   = flag.Int("draft", 0, "Number of top-projected players to draft after import")
		teams      = flag.Int("teams", defaultTeams, "League size pushed to /settings")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Also write the generated CSV to this file")
		verbose    = flag.Bool("verbose", false, "Log every drafted player")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seeder.ShowHelp()
		return
	}

	if err := seeder.SetupLogging(); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seeder.Config{
		BaseURL:    *baseURL,
		NumPlayers: *numPlayers,
		DraftTop:   *draftTop,
		Teams:      *teams,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		Verbose:    *verbose,
	}

	if err := seeder.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		return
	}
}
