// Package types contains the wire shapes shared between the service and
// the HTTP API.
package types

// Player mirrors the read shape returned by player queries. Nullable
// fields use pointers so "absent" serializes as JSON null.
type Player struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Team            string   `json:"team"`
	ProjectedPoints *float64 `json:"projected_points"`
	ByeWeek         int      `json:"bye_week"`
	PredictedPick   *int     `json:"predicted_pick,omitempty"`
	PickNumber      *int     `json:"pick_number"`
	TargetStatus    string   `json:"target_status"`
}

// LeagueSettings mirrors the league configuration exposed over HTTP.
type LeagueSettings struct {
	Teams        int      `json:"teams"`
	QBSlots      int      `json:"qb_slots"`
	RBSlots      int      `json:"rb_slots"`
	WRSlots      int      `json:"wr_slots"`
	TESlots      int      `json:"te_slots"`
	FlexSlots    int      `json:"flex_slots"`
	FlexEligible []string `json:"flex_eligible"`
}

// DraftResult reports the outcome of a draft/undraft toggle.
type DraftResult struct {
	Player  Player `json:"player"`
	Drafted bool   `json:"drafted"`
}

// ImportResult reports a successful bulk import.
type ImportResult struct {
	Inserted int `json:"inserted"`
}
