// Package importer parses and validates bulk player CSV uploads.
//
// Validation is all-or-nothing: every row error is collected and returned
// together, and the caller only ever persists a fully valid set.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gridironlabs/draftboard/internal/domain/model"
)

// Columns a player CSV must and may carry.
var (
	RequiredColumns = []string{"name", "position", "team", "projected_points"}
	OptionalColumns = []string{"bye_week", "predicted_pick"}
)

// RowError describes one invalid CSV row. Row numbering starts at 1 for
// the header, matching what a spreadsheet shows the user.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"error"`
}

// ValidationError carries every header or row problem found in an upload.
type ValidationError struct {
	Reason string
	Rows   []RowError
}

func (e *ValidationError) Error() string {
	if len(e.Rows) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s (%d invalid rows)", e.Reason, len(e.Rows))
}

// ParsePlayers reads a CSV of players and returns them with fresh ids,
// ready for a transactional replace. It returns a *ValidationError when
// the header is wrong or any row is invalid.
func ParsePlayers(r io.Reader) ([]model.Player, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ValidationError{Reason: "empty file"}
	}
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("unreadable CSV: %v", err)}
	}

	index, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var (
		players []model.Player
		rowErrs []RowError
		rownum  = 1 // header
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rownum++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rownum, Message: fmt.Sprintf("unreadable row: %v", err)})
			continue
		}

		p, err := parseRow(record, index)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rownum, Message: err.Error()})
			continue
		}
		players = append(players, p)
	}

	if len(rowErrs) > 0 {
		return nil, &ValidationError{Reason: "CSV contains invalid rows", Rows: rowErrs}
	}
	return players, nil
}

// indexHeader maps known column names to their positions. Required columns
// must all be present; unknown columns are rejected so typos never silently
// drop data.
func indexHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\uFEFF") // tolerate a UTF-8 BOM
		}
		name := strings.ToLower(strings.TrimSpace(col))
		if _, dup := index[name]; dup {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate column %q", name)}
		}
		if !knownColumn(name) {
			return nil, &ValidationError{Reason: fmt.Sprintf("unknown column %q", name)}
		}
		index[name] = i
	}
	for _, required := range RequiredColumns {
		if _, ok := index[required]; !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("missing required column %q", required)}
		}
	}
	return index, nil
}

func knownColumn(name string) bool {
	for _, col := range RequiredColumns {
		if name == col {
			return true
		}
	}
	for _, col := range OptionalColumns {
		if name == col {
			return true
		}
	}
	return false
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRow(record []string, index map[string]int) (model.Player, error) {
	name := field(record, index, "name")
	if name == "" {
		return model.Player{}, fmt.Errorf("name is required")
	}

	pos, err := model.ParsePosition(field(record, index, "position"))
	if err != nil {
		return model.Player{}, err
	}

	team := field(record, index, "team")
	if team == "" {
		return model.Player{}, fmt.Errorf("team is required")
	}

	points, err := strconv.ParseFloat(field(record, index, "projected_points"), 64)
	if err != nil {
		return model.Player{}, fmt.Errorf("projected_points must be a number")
	}

	p := model.Player{
		ID:              uuid.NewString(),
		Name:            name,
		Position:        pos,
		Team:            team,
		ProjectedPoints: &points,
		TargetStatus:    model.TargetDefault,
	}

	if raw := field(record, index, "bye_week"); raw != "" {
		bye, err := strconv.Atoi(raw)
		if err != nil || bye < 0 {
			return model.Player{}, fmt.Errorf("bye_week must be a non-negative integer")
		}
		p.ByeWeek = bye
	}

	if raw := field(record, index, "predicted_pick"); raw != "" {
		predicted, err := strconv.Atoi(raw)
		if err != nil || predicted < 1 {
			return model.Player{}, fmt.Errorf("predicted_pick must be a positive integer")
		}
		p.PredictedPick = &predicted
	}

	return p, nil
}
