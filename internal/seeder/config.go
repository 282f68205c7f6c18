package seeder

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumPlayers int           // Number of players to generate
	DraftTop   int           // Number of top players to draft after seeding
	Teams      int           // League size pushed to /settings
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Optional file the generated CSV is written to
	Verbose    bool          // Enable verbose logging
}

// Player is one generated roster entry before CSV encoding.
type Player struct {
	Name            string
	Position        string
	Team            string
	ProjectedPoints float64
	ByeWeek         int
	PredictedPick   int
}

// Stats holds seeding run statistics.
type Stats struct {
	PlayersGenerated int
	PlayersImported  int
	PlayersDrafted   int
	DropsScored      int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
