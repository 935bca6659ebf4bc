package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind is the base outcome of a single delivery.
type EventKind string

const (
	// EventRuns is a standard scoring delivery: 0, 1, 2, 3, 4 or 6 runs.
	EventRuns EventKind = "runs"
	// EventWide is an illegal wide delivery (1 penalty run + optional byes).
	EventWide EventKind = "wide"
	// EventNoBall is an illegal no-ball (1 penalty run + optional bat runs).
	EventNoBall EventKind = "no_ball"
	// EventWicket is a dismissal; run outs carry completed runs as well.
	EventWicket EventKind = "wicket"
	// EventShortRun credits N runs out of M attempted; strike rotation
	// follows the attempted count.
	EventShortRun EventKind = "short_run"
)

// Dismissal describes how a wicket fell. For run outs the caller must also
// resolve which batsman was out, who the replacement is, and whether the
// batsmen had crossed when the wicket was taken.
type Dismissal struct {
	Kind DismissalKind `json:"kind"`
	// BatsmanOutID defaults to the striker when empty (non-run-out kinds).
	BatsmanOutID string `json:"batsman_out_id,omitempty"`
	FielderID    string `json:"fielder_id,omitempty"`
	// NewBatsmanID is the incoming replacement for a run out.
	NewBatsmanID string `json:"new_batsman_id,omitempty"`
	// Crossed reports whether the batsmen crossed ends during the fatal
	// run attempt.
	Crossed bool `json:"crossed"`
}

// BallEvent is one delivery as reported by the scorer.
type BallEvent struct {
	Kind EventKind `json:"kind"`
	// Runs is the completed/credited run count: bat runs for EventRuns,
	// scored runs for EventShortRun, completed runs before a run out.
	Runs int `json:"runs"`
	// Attempted is the attempted run count for EventShortRun; its parity
	// drives strike rotation, not Runs.
	Attempted int `json:"attempted,omitempty"`
	// ExtraRuns are runs beyond the single wide/no-ball penalty.
	ExtraRuns int `json:"extra_runs,omitempty"`
	// Speed is an optional radar reading in km/h for a legal delivery.
	Speed     float64    `json:"speed,omitempty"`
	Dismissal *Dismissal `json:"dismissal,omitempty"`
}

// Validate rejects malformed events at the boundary before any state is
// touched.
func (ev BallEvent) Validate() error {
	switch ev.Kind {
	case EventRuns:
		switch ev.Runs {
		case 0, 1, 2, 3, 4, 6:
		default:
			return fmt.Errorf("invalid run count %d", ev.Runs)
		}
	case EventShortRun:
		if ev.Runs < 0 || ev.Attempted <= 0 {
			return fmt.Errorf("short run requires non-negative runs and positive attempted count")
		}
		if ev.Runs >= ev.Attempted {
			return fmt.Errorf("short run: attempted (%d) must exceed scored (%d)", ev.Attempted, ev.Runs)
		}
	case EventWide, EventNoBall:
		if ev.ExtraRuns < 0 {
			return fmt.Errorf("negative extra runs")
		}
		if ev.Dismissal != nil {
			return fmt.Errorf("dismissal on a %s is not supported", ev.Kind)
		}
	case EventWicket:
		if ev.Dismissal == nil {
			return fmt.Errorf("wicket event requires a dismissal")
		}
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	if ev.Dismissal != nil {
		switch ev.Dismissal.Kind {
		case DismissalBowled, DismissalCaught, DismissalLBW:
			if ev.Kind == EventWicket && ev.Runs != 0 {
				return fmt.Errorf("%s cannot carry completed runs", ev.Dismissal.Kind)
			}
		case DismissalRunOut:
			if ev.Dismissal.BatsmanOutID == "" {
				return fmt.Errorf("run out requires the dismissed batsman")
			}
		default:
			return fmt.Errorf("unknown dismissal kind %q", ev.Dismissal.Kind)
		}
	}
	return nil
}

// label renders the event the way it appears in the current-over strip,
// e.g. "4", "Wd+2", "Nb", "1S2", "W".
func (ev BallEvent) label() string {
	switch ev.Kind {
	case EventRuns:
		return strconv.Itoa(ev.Runs)
	case EventWide:
		if ev.ExtraRuns > 0 {
			return "Wd+" + strconv.Itoa(ev.ExtraRuns)
		}
		return "Wd"
	case EventNoBall:
		if ev.ExtraRuns > 0 {
			return "Nb+" + strconv.Itoa(ev.ExtraRuns)
		}
		return "Nb"
	case EventShortRun:
		return fmt.Sprintf("%dS%d", ev.Runs, ev.Attempted)
	case EventWicket:
		if ev.Dismissal != nil && ev.Dismissal.Kind == DismissalRunOut {
			return strconv.Itoa(ev.Runs) + "W"
		}
		return "W"
	}
	return "?"
}

// isLegal reports whether the delivery counts toward the over.
func (ev BallEvent) isLegal() bool {
	return ev.Kind != EventWide && ev.Kind != EventNoBall
}

// labelIsLegal mirrors isLegal for stored over-event labels.
func labelIsLegal(label string) bool {
	return !strings.HasPrefix(label, "Wd") && !strings.HasPrefix(label, "Nb")
}
