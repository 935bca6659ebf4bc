package fees

import (
	"fmt"
	"sort"

	"github.com/bccpune/crickclub/internal/match"
)

// FeeView projects a match's fee map for display. Tied matches report every
// player as exempt regardless of the stored statuses.
func FeeView(m *match.Match) match.FeeMap {
	view := make(match.FeeMap, len(m.Fees))
	tied := m.IsTied()
	for id, status := range m.Fees {
		if tied {
			view[id] = match.FeeExempt
		} else {
			view[id] = status
		}
	}
	return view
}

// CollectedForMatch is the fee money actually collected for one match.
func CollectedForMatch(m *match.Match) float64 {
	paid := 0
	for _, status := range FeeView(m) {
		if status == match.FeePaid {
			paid++
		}
	}
	return float64(paid) * m.FeeAmount
}

// TotalCollected sums collections across completed matches.
func TotalCollected(matches []match.Match) float64 {
	total := 0.0
	for i := range matches {
		total += CollectedForMatch(&matches[i])
	}
	return total
}

// OutstandingPlayerIDs lists the players who still owe the fee for a match,
// in a stable order.
func OutstandingPlayerIDs(m *match.Match) []string {
	var ids []string
	for id, status := range FeeView(m) {
		if status == match.FeeUnpaid {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Reminder is one composed fee-reminder message. Delivery is up to the
// caller; the service only writes the text.
type Reminder struct {
	PlayerID string `json:"player_id"`
	Message  string `json:"message"`
}

// ComposeReminders writes one reminder per outstanding player plus a group
// summary line. names maps player id to display name; unknown ids fall back
// to the id itself.
func ComposeReminders(m *match.Match, names map[string]string) ([]Reminder, string) {
	outstanding := OutstandingPlayerIDs(m)
	if len(outstanding) == 0 {
		return nil, ""
	}

	label := fmt.Sprintf("%s vs %s on %s", m.TeamA, m.TeamB, m.ScheduledAt.Format("02 Jan 2006"))
	reminders := make([]Reminder, 0, len(outstanding))
	for _, id := range outstanding {
		name := names[id]
		if name == "" {
			name = id
		}
		reminders = append(reminders, Reminder{
			PlayerID: id,
			Message: fmt.Sprintf(
				"Hi %s, your match fee of %.2f for %s is still unpaid. Please settle it with the club treasurer.",
				name, m.FeeAmount, label),
		})
	}
	group := fmt.Sprintf("%d player(s) still owe the %.2f match fee for %s.",
		len(outstanding), m.FeeAmount, label)
	return reminders, group
}
