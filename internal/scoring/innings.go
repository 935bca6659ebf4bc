package scoring

import "fmt"

// NewInnings builds a zeroed ledger for one batting effort. Stats are
// pre-populated for every player in the match (both teams) so that later
// bowler/batsman lookups never fail.
func NewInnings(playerIDs []string, battingTeam, bowlingTeam string) *Innings {
	inn := &Innings{
		BattingTeam:   battingTeam,
		BowlingTeam:   bowlingTeam,
		BatsmenStats:  make(map[string]*BatsmanStats, len(playerIDs)),
		BowlerStats:   make(map[string]*BowlerStats, len(playerIDs)),
		FallOfWickets: []FallOfWicket{},
	}
	for _, id := range playerIDs {
		inn.BatsmenStats[id] = &BatsmanStats{}
		inn.BowlerStats[id] = &BowlerStats{}
	}
	return inn
}

// addRuns credits runs scored off the bat: score, striker's tally and the
// bowler's conceded total. Boundary counters are skipped for short runs,
// where the ball reaching the rope is not what produced the figure.
func (inn *Innings) addRuns(strikerID, bowlerID string, runs int, countBoundary bool) {
	inn.Score += runs
	if bs, ok := inn.BatsmenStats[strikerID]; ok {
		bs.Runs += runs
		if countBoundary {
			if runs == 4 {
				bs.Fours++
			}
			if runs == 6 {
				bs.Sixes++
			}
		}
	}
	if bw, ok := inn.BowlerStats[bowlerID]; ok {
		bw.RunsConceded += runs
	}
}

// addExtra applies a wide or no-ball: one penalty run plus any extras go to
// the score and the bowler's conceded total. No-ball extras came off the bat
// and are additionally the striker's runs; wide extras belong to nobody.
func (inn *Innings) addExtra(kind EventKind, extraRuns int, bowlerID, strikerID string) {
	total := 1 + extraRuns
	inn.Score += total
	if bw, ok := inn.BowlerStats[bowlerID]; ok {
		bw.RunsConceded += total
	}
	if kind == EventNoBall && extraRuns > 0 {
		if bs, ok := inn.BatsmenStats[strikerID]; ok {
			bs.Runs += extraRuns
			if extraRuns == 4 {
				bs.Fours++
			}
			if extraRuns == 6 {
				bs.Sixes++
			}
		}
	}
}

// recordLegalBall counts a legal delivery against the innings, the striker
// and the bowler. Never called for wides or no-balls.
func (inn *Innings) recordLegalBall(bowlerID, strikerID string) {
	inn.TotalLegalBalls++
	if bs, ok := inn.BatsmenStats[strikerID]; ok {
		bs.Balls++
	}
	if bw, ok := inn.BowlerStats[bowlerID]; ok {
		bw.BallsBowled++
	}
}

// recordWicket marks the batsman out, credits the bowler for everything but
// a run out, and appends the fall-of-wickets entry at the current score.
func (inn *Innings) recordWicket(batsmanOutID string, howOut DismissalKind, bowlerID, fielderID string) {
	inn.Wickets++
	if bs, ok := inn.BatsmenStats[batsmanOutID]; ok {
		bs.IsOut = true
		bs.HowOut = howOut
		if howOut != DismissalRunOut {
			bs.BowlerID = bowlerID
			if bw, ok := inn.BowlerStats[bowlerID]; ok {
				bw.Wickets++
			}
		}
		if fielderID != "" {
			bs.FielderID = fielderID
		}
	}
	inn.FallOfWickets = append(inn.FallOfWickets, FallOfWicket{
		Score:     inn.Score,
		Wicket:    inn.Wickets,
		BatsmanID: batsmanOutID,
	})
}

// notOutCount reports how many of the given players are still not out.
func (inn *Innings) notOutCount(playerIDs []string) int {
	n := 0
	for _, id := range playerIDs {
		if bs, ok := inn.BatsmenStats[id]; ok && !bs.IsOut {
			n++
		}
	}
	return n
}

// FormatOvers renders a legal-ball count as the usual overs notation,
// e.g. 58 balls -> "9.4".
func FormatOvers(balls int) string {
	if balls < 0 {
		balls = 0
	}
	return fmt.Sprintf("%d.%d", balls/6, balls%6)
}
