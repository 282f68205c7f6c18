// Package repository defines the draft store interface and its SQLite
// implementation.
package repository

import (
	"context"

	"github.com/gridironlabs/draftboard/internal/domain/model"
)

// PlayerUpdate is the closed set of fields a caller may change on a player.
// Nil fields are left untouched. Draft state is excluded on purpose: picks
// move only through AssignPick/ClearPick.
type PlayerUpdate struct {
	Name            *string
	Team            *string
	Position        *model.Position
	ProjectedPoints *float64
	ByeWeek         *int
	TargetStatus    *string
}

// Store provides transactional access to the draft state.
type Store interface {
	// Snapshot reads all players and the league config in one transaction,
	// giving the engine a consistent view for a whole scoring request.
	Snapshot(ctx context.Context) (model.Snapshot, error)

	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (model.Player, error)
	UpdatePlayer(ctx context.Context, id string, upd PlayerUpdate) (model.Player, error)

	// ReplaceAll swaps the entire player set in a single transaction and
	// returns the inserted count. Nothing is written when any insert fails.
	ReplaceAll(ctx context.Context, players []model.Player) (int, error)

	// AssignPick atomically gives the player the next overall pick number.
	// Returns ErrAlreadyDrafted when the player holds a pick, and
	// ErrPickConflict when a concurrent assignment won the number; the
	// caller is expected to retry on conflict.
	AssignPick(ctx context.Context, id string) (int, error)

	// ClearPick removes the player's pick number without renumbering
	// anyone else. Returns ErrNotDrafted when there is nothing to clear.
	ClearPick(ctx context.Context, id string) error

	// ResetPicks clears every pick number in one statement.
	ResetPicks(ctx context.Context) error

	GetConfig(ctx context.Context) (model.LeagueConfig, error)
	SaveConfig(ctx context.Context, cfg model.LeagueConfig) error

	// Count returns the number of players tracked by the store.
	Count(ctx context.Context) int

	Close() error
}
