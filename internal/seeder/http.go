package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
)

// apiPlayer mirrors the player shape returned by GET /players.
type apiPlayer struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Team            string   `json:"team"`
	ProjectedPoints *float64 `json:"projected_points"`
	PickNumber      *int     `json:"pick_number"`
}

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(config *Config) *client {
	return &client{
		baseURL: config.BaseURL,
		http:    &http.Client{Timeout: config.Timeout},
	}
}

func (c *client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, payload)
	}
	return payload, nil
}

// updateSettings pushes the league shape so need resolution has a config.
func (c *client) updateSettings(ctx context.Context, teams int) error {
	body, _ := json.Marshal(map[string]int{"teams": teams})
	_, err := c.do(ctx, http.MethodPatch, "/settings", bytes.NewReader(body), "application/json")
	return err
}

// importCSV replaces the player pool with the generated CSV.
func (c *client) importCSV(ctx context.Context, csvData []byte) (int, error) {
	payload, err := c.do(ctx, http.MethodPost, "/players/import", bytes.NewReader(csvData), "text/csv")
	if err != nil {
		return 0, err
	}
	var result struct {
		Inserted int `json:"inserted"`
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		return 0, fmt.Errorf("decode import result: %w", err)
	}
	return result.Inserted, nil
}

// listTopPlayers returns the n highest-projected players.
func (c *client) listTopPlayers(ctx context.Context, n int) ([]apiPlayer, error) {
	payload, err := c.do(ctx, http.MethodGet, "/players", nil, "")
	if err != nil {
		return nil, err
	}
	var players []apiPlayer
	if err := json.Unmarshal(payload, &players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	sort.Slice(players, func(i, j int) bool {
		pi, pj := -1.0, -1.0
		if players[i].ProjectedPoints != nil {
			pi = *players[i].ProjectedPoints
		}
		if players[j].ProjectedPoints != nil {
			pj = *players[j].ProjectedPoints
		}
		return pi > pj
	})
	if n > len(players) {
		n = len(players)
	}
	return players[:n], nil
}

// draftPlayer toggles a player into the drafted state.
func (c *client) draftPlayer(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPost, "/players/"+id+"/draft", nil, "")
	return err
}

// fetchDrops retrieves drop scores for the current pool.
func (c *client) fetchDrops(ctx context.Context) (map[string]float64, error) {
	payload, err := c.do(ctx, http.MethodGet, "/drops", nil, "")
	if err != nil {
		return nil, err
	}
	var drops map[string]float64
	if err := json.Unmarshal(payload, &drops); err != nil {
		return nil, fmt.Errorf("decode drops: %w", err)
	}
	return drops, nil
}
