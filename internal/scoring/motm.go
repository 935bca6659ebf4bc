package scoring

// manOfTheMatch picks the outstanding performer of a completed match.
//
// Main innings batting: runs x1.5, strike-rate bonus above 120, milestone
// bonuses at 50 and 100. Bowling: 25 per wicket, haul bonuses at 3 and 5,
// economy bonus under 8 for two-plus overs. Fielding: 10 per catch or run
// out effected. The deciding tie-breaker scores separately at higher
// weights. Winning-team members get a flat 20. Ties break toward the
// earlier player in roster order; nobody wins with a zero score.
func manOfTheMatch(playerIDs, winnerTeamIDs []string, innings *InningsPair, tieBreakers []TieBreaker) string {
	winner := make(map[string]bool, len(winnerTeamIDs))
	for _, id := range winnerTeamIDs {
		winner[id] = true
	}

	best, bestScore := "", 0.0
	for _, id := range playerIDs {
		score := 0.0
		for _, inn := range []*Innings{innings.Innings1, innings.Innings2} {
			if inn == nil {
				continue
			}
			score += mainInningsPoints(id, inn)
		}
		if len(tieBreakers) > 0 {
			score += tieBreakerPoints(id, &tieBreakers[len(tieBreakers)-1])
		}
		if winner[id] {
			score += 20
		}
		if score > bestScore {
			best, bestScore = id, score
		}
	}
	return best
}

func mainInningsPoints(id string, inn *Innings) float64 {
	score := 0.0
	if bs, ok := inn.BatsmenStats[id]; ok {
		score += float64(bs.Runs) * 1.5
		if bs.Balls > 0 {
			sr := float64(bs.Runs) / float64(bs.Balls) * 100
			if sr > 120 {
				score += (sr - 120) * 0.5
			}
		}
		if bs.Runs >= 100 {
			score += 50
		} else if bs.Runs >= 50 {
			score += 25
		}
	}
	if bw, ok := inn.BowlerStats[id]; ok {
		score += float64(bw.Wickets) * 25
		if bw.Wickets >= 5 {
			score += 50
		} else if bw.Wickets >= 3 {
			score += 25
		}
		if bw.BallsBowled >= 12 {
			economy := float64(bw.RunsConceded) / (float64(bw.BallsBowled) / 6)
			if economy < 8 {
				score += (8 - economy) * 10
			}
		}
	}
	for _, bs := range inn.BatsmenStats {
		if bs.FielderID == id && (bs.HowOut == DismissalCaught || bs.HowOut == DismissalRunOut) {
			score += 10
		}
	}
	return score
}

// tieBreakerPoints scores only the deciding tie-breaker, and only once it
// carries a result.
func tieBreakerPoints(id string, tb *TieBreaker) float64 {
	if tb.ResultDescription == "" {
		return 0
	}
	score := 0.0
	if tb.SuperOver != nil {
		for _, inn := range []*Innings{tb.SuperOver.Innings1, tb.SuperOver.Innings2} {
			if inn == nil {
				continue
			}
			if bs, ok := inn.BatsmenStats[id]; ok {
				score += float64(bs.Runs) * 5
				if bs.Runs >= 10 {
					score += 20
				}
				score += float64(bs.Sixes) * 10
			}
			if bw, ok := inn.BowlerStats[id]; ok {
				score += float64(bw.Wickets) * 50
				if bw.BallsBowled > 0 {
					if bw.RunsConceded <= 6 {
						score += 30
					} else if bw.RunsConceded <= 10 {
						score += 15
					}
				}
			}
		}
	}
	for _, a := range tb.BowlOutAttempts {
		if a.BowlerID == id && a.Outcome == BowlOutHit {
			score += 50
		}
	}
	return score
}
