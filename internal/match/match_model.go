package match

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bccpune/crickclub/internal/scoring"
	"gorm.io/gorm"
)

// Status tracks a match through its lifecycle.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// FeeStatus is one player's match-fee state.
type FeeStatus string

const (
	FeeUnpaid FeeStatus = "Unpaid"
	FeePaid   FeeStatus = "Paid"
	FeeExempt FeeStatus = "Exempt"
)

// jsonScan is the shared scanner for the JSON column types below.
func jsonScan(dest interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

// StringList persists a list of player ids as a JSON column.
type StringList []string

func (s StringList) Value() (driver.Value, error) { return json.Marshal(s) }
func (s *StringList) Scan(value interface{}) error {
	return jsonScan(s, value)
}

// StringMap persists team -> player maps (captains) as a JSON column.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) { return json.Marshal(m) }
func (m *StringMap) Scan(value interface{}) error {
	return jsonScan(m, value)
}

// FeeMap persists per-player fee statuses as a JSON column.
type FeeMap map[string]FeeStatus

func (m FeeMap) Value() (driver.Value, error) { return json.Marshal(m) }
func (m *FeeMap) Scan(value interface{}) error {
	return jsonScan(m, value)
}

// ProgressColumn persists the resumable live-scoring state as a JSON column.
type ProgressColumn struct {
	Progress *scoring.Progress
}

func (p ProgressColumn) Value() (driver.Value, error) {
	if p.Progress == nil {
		return nil, nil
	}
	return json.Marshal(p.Progress)
}

func (p *ProgressColumn) Scan(value interface{}) error {
	if value == nil {
		p.Progress = nil
		return nil
	}
	p.Progress = &scoring.Progress{}
	return jsonScan(p.Progress, value)
}

func (p ProgressColumn) MarshalJSON() ([]byte, error)     { return json.Marshal(p.Progress) }
func (p *ProgressColumn) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &p.Progress) }

// ResultColumn persists the frozen match outcome as a JSON column.
type ResultColumn struct {
	Result *scoring.Result
}

func (r ResultColumn) Value() (driver.Value, error) {
	if r.Result == nil {
		return nil, nil
	}
	return json.Marshal(r.Result)
}

func (r *ResultColumn) Scan(value interface{}) error {
	if value == nil {
		r.Result = nil
		return nil
	}
	r.Result = &scoring.Result{}
	return jsonScan(r.Result, value)
}

func (r ResultColumn) MarshalJSON() ([]byte, error)     { return json.Marshal(r.Result) }
func (r *ResultColumn) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &r.Result) }

// Match is the scheduling and scoring aggregate. Rosters, captains, fees and
// the whole live-scoring state live in JSON columns; the engine state is
// saved back after every processed event so a live match survives a restart.
type Match struct {
	ID     string `json:"id" gorm:"primaryKey;type:uuid"`
	TeamA  string `json:"team_a" gorm:"not null"`
	TeamB  string `json:"team_b" gorm:"not null"`
	Ground string `json:"ground,omitempty"`
	Status Status `json:"status" gorm:"index;default:'scheduled'"`

	ScheduledAt time.Time  `json:"scheduled_at" gorm:"index"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"index"`

	TotalOvers int     `json:"total_overs"`
	FeeAmount  float64 `json:"fee_amount"`

	TeamAPlayerIDs StringList `json:"team_a_player_ids" gorm:"type:json"`
	TeamBPlayerIDs StringList `json:"team_b_player_ids" gorm:"type:json"`
	Captains       StringMap  `json:"captains" gorm:"type:json"`
	Fees           FeeMap     `json:"fees" gorm:"type:json"`

	LiveProgress ProgressColumn `json:"live_progress,omitempty" gorm:"type:json"`
	Result       ResultColumn   `json:"result,omitempty" gorm:"type:json"`

	Winner          string `json:"winner,omitempty"`
	ResultSummary   string `json:"result_summary,omitempty"`
	ManOfTheMatchID string `json:"man_of_the_match_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// AllPlayerIDs returns both rosters in team order.
func (m *Match) AllPlayerIDs() []string {
	return append(append([]string{}, m.TeamAPlayerIDs...), m.TeamBPlayerIDs...)
}

// ScoringConfig maps the aggregate onto an engine configuration.
func (m *Match) ScoringConfig() scoring.Config {
	return scoring.Config{
		Teams: [2]scoring.TeamRoster{
			{Name: m.TeamA, PlayerIDs: []string(m.TeamAPlayerIDs)},
			{Name: m.TeamB, PlayerIDs: []string(m.TeamBPlayerIDs)},
		},
		Captains:   map[string]string(m.Captains),
		TotalOvers: m.TotalOvers,
	}
}

// IsTied reports whether a completed match finished without a winner.
func (m *Match) IsTied() bool {
	return m.Status == StatusCompleted && m.Winner == ""
}

// ErrNotLive is returned for live-scoring operations on a match that is not
// in the live state.
var ErrNotLive = errors.New("match is not live")
