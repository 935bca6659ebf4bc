package scoring

import (
	"errors"
	"fmt"
)

// NominateBowlOutBowlers fixes the bowling order for both sides: five
// bowlers each, in the order they will bowl. Must happen before the first
// attempt.
func (e *Engine) NominateBowlOutBowlers(teamABowlers, teamBBowlers []string) error {
	if e.p.Stage != StageBowlOutPlay {
		return ErrWrongStage
	}
	bo := e.p.BowlOut
	if bo == nil {
		return errors.New("no bowl out in progress")
	}
	if len(bo.Attempts) > 0 {
		return errors.New("bowl out already underway")
	}
	if len(teamABowlers) != bowlOutRounds || len(teamBBowlers) != bowlOutRounds {
		return fmt.Errorf("each team nominates exactly %d bowlers", bowlOutRounds)
	}
	for _, id := range teamABowlers {
		if !e.onTeam(e.cfg.Teams[0].Name, id) {
			return fmt.Errorf("player %s is not in team %s", id, e.cfg.Teams[0].Name)
		}
	}
	for _, id := range teamBBowlers {
		if !e.onTeam(e.cfg.Teams[1].Name, id) {
			return fmt.Errorf("player %s is not in team %s", id, e.cfg.Teams[1].Name)
		}
	}
	bo.TeamABowlers = append([]string(nil), teamABowlers...)
	bo.TeamBBowlers = append([]string(nil), teamBBowlers...)
	return nil
}

// RecordBowlOutAttempt records one delivery at the unguarded stumps and
// advances the alternating turn order. The bowl out ends after five rounds
// or as soon as one side's lead cannot be overhauled with the deliveries the
// other side has left.
func (e *Engine) RecordBowlOutAttempt(outcome BowlOutOutcome) error {
	if e.p.Stage != StageBowlOutPlay {
		return ErrWrongStage
	}
	if outcome != BowlOutHit && outcome != BowlOutMiss {
		return fmt.Errorf("unknown bowl out outcome %q", outcome)
	}
	bo := e.p.BowlOut
	if bo == nil {
		return errors.New("no bowl out in progress")
	}
	if len(bo.TeamABowlers) != bowlOutRounds || len(bo.TeamBBowlers) != bowlOutRounds {
		return errors.New("bowlers must be nominated before the first attempt")
	}

	teamA, teamB := e.cfg.Teams[0].Name, e.cfg.Teams[1].Name
	bowlers := bo.TeamABowlers
	if bo.CurrentTeam == teamB {
		bowlers = bo.TeamBBowlers
	}
	bowlerID := bowlers[bo.CurrentTurn-1]

	prevA, prevB := 0, 0
	for _, a := range bo.Attempts {
		if a.TeamName == teamA {
			prevA++
		} else {
			prevB++
		}
	}

	bo.Attempts = append(bo.Attempts, BowlOutAttempt{
		TeamName: bo.CurrentTeam,
		BowlerID: bowlerID,
		Outcome:  outcome,
	})

	hitsA, hitsB := 0, 0
	for _, a := range bo.Attempts {
		if a.Outcome != BowlOutHit {
			continue
		}
		if a.TeamName == teamA {
			hitsA++
		} else {
			hitsB++
		}
	}

	nextTeam := teamB
	nextTurn := bo.CurrentTurn
	if bo.CurrentTeam == teamB {
		nextTeam = teamA
		nextTurn++
	}

	// Decided early when the trailing side cannot catch up with its
	// remaining deliveries; otherwise after five rounds each.
	over := nextTurn > bowlOutRounds ||
		hitsA > hitsB+(bowlOutRounds-prevB) ||
		hitsB > hitsA+(bowlOutRounds-prevA)

	if !over {
		bo.CurrentTeam = nextTeam
		bo.CurrentTurn = nextTurn
		return nil
	}

	tb := &e.p.TieBreakers[len(e.p.TieBreakers)-1]
	tb.BowlOutAttempts = append([]BowlOutAttempt(nil), bo.Attempts...)
	switch {
	case hitsA > hitsB:
		tb.ResultDescription = teamA + " won in Bowl Out"
		e.endMatch(teamA, tb.ResultDescription)
	case hitsB > hitsA:
		tb.ResultDescription = teamB + " won in Bowl Out"
		e.endMatch(teamB, tb.ResultDescription)
	default:
		tb.ResultDescription = "Bowl Out Tied"
		if len(e.p.TieBreakers) < 2 {
			e.p.BowlOut = nil
			e.p.Stage = StageTieBreakerSelection
		} else {
			e.endMatch("", "Match Tied after Bowl Out")
		}
	}
	return nil
}
