package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gridironlabs/draftboard/internal/domain/model"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    position TEXT NOT NULL,
    team TEXT NOT NULL,
    projected_points REAL,
    bye_week INTEGER NOT NULL DEFAULT 0,
    predicted_pick INTEGER,
    pick_number INTEGER UNIQUE,
    target_status TEXT NOT NULL DEFAULT 'default'
);
CREATE INDEX IF NOT EXISTS idx_players_position ON players(position);

CREATE TABLE IF NOT EXISTS league_config (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    teams INTEGER NOT NULL,
    qb_slots INTEGER NOT NULL,
    rb_slots INTEGER NOT NULL,
    wr_slots INTEGER NOT NULL,
    te_slots INTEGER NOT NULL,
    flex_slots INTEGER NOT NULL,
    flex_eligible TEXT NOT NULL
);
`

const playerColumns = "id, name, position, team, projected_points, bye_week, predicted_pick, pick_number, target_status"

// SQLiteStore implements Store on a single SQLite database file.
//
// Pick-number uniqueness is enforced by the UNIQUE column constraint, so a
// lost read-then-write race surfaces as a constraint violation instead of a
// silent duplicate.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (and if necessary initializes) a SQLite store at path.
func Open(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (model.Player, error) {
	var (
		p         model.Player
		points    sql.NullFloat64
		predicted sql.NullInt64
		pick      sql.NullInt64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Position, &p.Team, &points, &p.ByeWeek, &predicted, &pick, &p.TargetStatus); err != nil {
		return model.Player{}, err
	}
	if points.Valid {
		v := points.Float64
		p.ProjectedPoints = &v
	}
	if predicted.Valid {
		n := int(predicted.Int64)
		p.PredictedPick = &n
	}
	if pick.Valid {
		n := int(pick.Int64)
		p.PickNumber = &n
	}
	return p, nil
}

func listPlayersTx(ctx context.Context, q interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}) ([]model.Player, error) {
	rows, err := q.QueryContext(ctx, "SELECT "+playerColumns+" FROM players ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var players []model.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

// Snapshot reads all players and the league config inside one read
// transaction so scoring never observes a half-applied draft mutation.
func (s *SQLiteStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	players, err := listPlayersTx(ctx, tx)
	if err != nil {
		return model.Snapshot{}, err
	}

	cfg, err := getConfigRow(ctx, tx)
	if err != nil && err != ErrNoConfig {
		return model.Snapshot{}, err
	}

	snap := model.Snapshot{Players: players}
	if err == nil {
		snap.Config = &cfg
	}
	return snap, nil
}

// ListPlayers returns every player ordered by name.
func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return listPlayersTx(ctx, s.db)
}

// GetPlayer returns one player or ErrNotFound.
func (s *SQLiteStore) GetPlayer(ctx context.Context, id string) (model.Player, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+playerColumns+" FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return model.Player{}, ErrNotFound
	}
	if err != nil {
		return model.Player{}, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

// UpdatePlayer applies the non-nil fields of upd and returns the updated
// player. Draft state cannot be changed here.
func (s *SQLiteStore) UpdatePlayer(ctx context.Context, id string, upd PlayerUpdate) (model.Player, error) {
	var (
		sets []string
		args []any
	)
	if upd.Name != nil {
		sets, args = append(sets, "name = ?"), append(args, *upd.Name)
	}
	if upd.Team != nil {
		sets, args = append(sets, "team = ?"), append(args, *upd.Team)
	}
	if upd.Position != nil {
		sets, args = append(sets, "position = ?"), append(args, string(*upd.Position))
	}
	if upd.ProjectedPoints != nil {
		sets, args = append(sets, "projected_points = ?"), append(args, *upd.ProjectedPoints)
	}
	if upd.ByeWeek != nil {
		sets, args = append(sets, "bye_week = ?"), append(args, *upd.ByeWeek)
	}
	if upd.TargetStatus != nil {
		sets, args = append(sets, "target_status = ?"), append(args, *upd.TargetStatus)
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx, "UPDATE players SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return model.Player{}, fmt.Errorf("update player: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return model.Player{}, ErrNotFound
		}
	}

	return s.GetPlayer(ctx, id)
}

// ReplaceAll deletes the current player set and inserts the new one in a
// single transaction, returning the inserted count.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, players []model.Player) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return 0, fmt.Errorf("clear players: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO players ("+playerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range players {
		var points any
		if p.ProjectedPoints != nil {
			points = *p.ProjectedPoints
		}
		var predicted any
		if p.PredictedPick != nil {
			predicted = *p.PredictedPick
		}
		var pick any
		if p.PickNumber != nil {
			pick = *p.PickNumber
		}
		status := p.TargetStatus
		if status == "" {
			status = model.TargetDefault
		}
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, string(p.Position), p.Team, points, p.ByeWeek, predicted, pick, status); err != nil {
			return 0, fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace: %w", err)
	}
	return len(players), nil
}

// AssignPick computes max(pick)+1 and writes it in one immediate
// transaction. The UNIQUE constraint turns a lost race into
// ErrPickConflict instead of a duplicate number.
func (s *SQLiteStore) AssignPick(ctx context.Context, id string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin pick tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var pick sql.NullInt64
	err = tx.QueryRowContext(ctx, "SELECT pick_number FROM players WHERE id = ?", id).Scan(&pick)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("read pick: %w", err)
	}
	if pick.Valid {
		return 0, ErrAlreadyDrafted
	}

	var next int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(pick_number), 0) + 1 FROM players").Scan(&next); err != nil {
		return 0, fmt.Errorf("next pick: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE players SET pick_number = ? WHERE id = ? AND pick_number IS NULL", next, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrPickConflict
		}
		return 0, fmt.Errorf("assign pick: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return 0, ErrAlreadyDrafted
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrPickConflict
		}
		return 0, fmt.Errorf("commit pick: %w", err)
	}
	return next, nil
}

// ClearPick removes the pick number without renumbering anyone else; gaps
// in the sequence are expected after undrafts.
func (s *SQLiteStore) ClearPick(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE players SET pick_number = NULL WHERE id = ? AND pick_number IS NOT NULL", id)
	if err != nil {
		return fmt.Errorf("clear pick: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("clear pick result: %w", err)
	}
	if n == 0 {
		if _, err := s.GetPlayer(ctx, id); err != nil {
			return err
		}
		return ErrNotDrafted
	}
	return nil
}

// ResetPicks clears every pick number in one statement.
func (s *SQLiteStore) ResetPicks(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "UPDATE players SET pick_number = NULL"); err != nil {
		return fmt.Errorf("reset picks: %w", err)
	}
	return nil
}

func getConfigRow(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}) (model.LeagueConfig, error) {
	var (
		cfg      model.LeagueConfig
		eligible string
	)
	err := q.QueryRowContext(ctx,
		"SELECT teams, qb_slots, rb_slots, wr_slots, te_slots, flex_slots, flex_eligible FROM league_config WHERE id = 1").
		Scan(&cfg.Teams, &cfg.QBSlots, &cfg.RBSlots, &cfg.WRSlots, &cfg.TESlots, &cfg.FlexSlots, &eligible)
	if err == sql.ErrNoRows {
		return model.LeagueConfig{}, ErrNoConfig
	}
	if err != nil {
		return model.LeagueConfig{}, fmt.Errorf("get league config: %w", err)
	}
	for _, part := range strings.Split(eligible, ",") {
		if part == "" {
			continue
		}
		pos, err := model.ParsePosition(part)
		if err != nil {
			return model.LeagueConfig{}, fmt.Errorf("league config: %w", err)
		}
		cfg.FlexEligible = append(cfg.FlexEligible, pos)
	}
	return cfg, nil
}

// GetConfig returns the league config or ErrNoConfig.
func (s *SQLiteStore) GetConfig(ctx context.Context) (model.LeagueConfig, error) {
	return getConfigRow(ctx, s.db)
}

// SaveConfig upserts the single league config row.
func (s *SQLiteStore) SaveConfig(ctx context.Context, cfg model.LeagueConfig) error {
	parts := make([]string, 0, len(cfg.FlexPositions()))
	for _, pos := range cfg.FlexPositions() {
		parts = append(parts, string(pos))
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO league_config (id, teams, qb_slots, rb_slots, wr_slots, te_slots, flex_slots, flex_eligible)
VALUES (1, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    teams = excluded.teams,
    qb_slots = excluded.qb_slots,
    rb_slots = excluded.rb_slots,
    wr_slots = excluded.wr_slots,
    te_slots = excluded.te_slots,
    flex_slots = excluded.flex_slots,
    flex_eligible = excluded.flex_eligible`,
		cfg.Teams, cfg.QBSlots, cfg.RBSlots, cfg.WRSlots, cfg.TESlots, cfg.FlexSlots, strings.Join(parts, ","))
	if err != nil {
		return fmt.Errorf("save league config: %w", err)
	}
	return nil
}

// Count returns the number of players tracked by the store.
func (s *SQLiteStore) Count(ctx context.Context) int {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM players").Scan(&n); err != nil {
		return 0
	}
	return n
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure, which is how a lost pick-assignment race manifests.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
