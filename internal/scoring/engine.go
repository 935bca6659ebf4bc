package scoring

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
)

// Engine-level failure modes surfaced to the caller. Nothing here is fatal:
// the operation is rejected and no state is mutated.
var (
	ErrWrongStage        = errors.New("operation not valid in current stage")
	ErrSelectionRequired = errors.New("a batsman or bowler selection is required before the next ball")
	ErrNothingToUndo     = errors.New("nothing to undo in this over")
	ErrMatchOver         = errors.New("match is already over")
)

const (
	maxWicketsInnings   = 10
	maxWicketsSuperOver = 2
	superOverBalls      = 6
	bowlOutRounds       = 5
)

// TeamRoster is one side of the match in a stable order.
type TeamRoster struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
}

// Config is everything the engine needs to run one match. Rand drives the
// toss only; Clock stamps completion.
type Config struct {
	Teams      [2]TeamRoster
	Captains   map[string]string
	TotalOvers int // 0 means unlimited
	Rand       *rand.Rand
	Clock      clockwork.Clock
}

func (c *Config) validate() error {
	if c.Teams[0].Name == "" || c.Teams[1].Name == "" || c.Teams[0].Name == c.Teams[1].Name {
		return errors.New("two distinct team names are required")
	}
	seen := make(map[string]string)
	for _, t := range c.Teams {
		if len(t.PlayerIDs) < 11 {
			return fmt.Errorf("team %q needs at least 11 players, got %d", t.Name, len(t.PlayerIDs))
		}
		for _, id := range t.PlayerIDs {
			if other, dup := seen[id]; dup {
				return fmt.Errorf("player %s appears in both %q and %q", id, other, t.Name)
			}
			seen[id] = t.Name
		}
	}
	for team := range c.Captains {
		if team != c.Teams[0].Name && team != c.Teams[1].Name {
			return fmt.Errorf("captain assigned to unknown team %q", team)
		}
	}
	return nil
}

// Engine is the live match state machine. It is single-writer: one ball
// event is processed to completion before the next is accepted. All blocking
// is modelled as state (empty selection fields), never as goroutines.
type Engine struct {
	cfg     Config
	players []string
	p       Progress
	result  *Result
}

// NewEngine starts a fresh match at the toss.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	e := &Engine{cfg: cfg}
	e.players = append(append([]string{}, cfg.Teams[0].PlayerIDs...), cfg.Teams[1].PlayerIDs...)
	e.p = Progress{
		Stage:          StageToss,
		CurrentInnings: 1,
		Innings: InningsPair{
			Innings1: NewInnings(e.players, "", ""),
			Innings2: NewInnings(e.players, "", ""),
		},
	}
	return e, nil
}

// Resume rebuilds an engine from persisted progress.
func Resume(cfg Config, p Progress) (*Engine, error) {
	e, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	if p.Stage == "" {
		return nil, errors.New("progress has no stage")
	}
	e.p = p
	return e, nil
}

// Progress returns a deep copy of the resumable state.
func (e *Engine) Progress() Progress {
	p := e.p
	p.Innings = e.p.Innings.Clone()
	p.Live = e.p.Live.Clone()
	if e.p.TiedInnings != nil {
		cl := e.p.TiedInnings.Clone()
		p.TiedInnings = &cl
	}
	p.TieBreakers = append([]TieBreaker(nil), e.p.TieBreakers...)
	if e.p.BowlOut != nil {
		bo := *e.p.BowlOut
		bo.Attempts = append([]BowlOutAttempt(nil), e.p.BowlOut.Attempts...)
		bo.TeamABowlers = append([]string(nil), e.p.BowlOut.TeamABowlers...)
		bo.TeamBBowlers = append([]string(nil), e.p.BowlOut.TeamBBowlers...)
		p.BowlOut = &bo
	}
	if e.p.FastestBall != nil {
		fb := *e.p.FastestBall
		p.FastestBall = &fb
	}
	if len(e.p.UndoStack) > 0 {
		p.UndoStack = make([]UndoSnapshot, len(e.p.UndoStack))
		for i, s := range e.p.UndoStack {
			p.UndoStack[i] = s.Clone()
		}
	}
	return p
}

// Stage reports the current state-machine position.
func (e *Engine) Stage() Stage { return e.p.Stage }

// Result returns the frozen outcome, or nil while the match is running.
func (e *Engine) Result() *Result { return e.result }

// Toss flips the coin and advances to the decision stage.
func (e *Engine) Toss() (string, error) {
	if e.p.Stage != StageToss {
		return "", ErrWrongStage
	}
	winner := e.cfg.Teams[0].Name
	if e.cfg.Rand.Intn(2) == 1 {
		winner = e.cfg.Teams[1].Name
	}
	e.p.TossWinner = winner
	e.p.Stage = StageDecision
	return winner, nil
}

// Decide records the toss winner's choice and derives the batting order for
// both innings. Set once; immutable afterward.
func (e *Engine) Decide(d Decision) error {
	if e.p.Stage != StageDecision {
		return ErrWrongStage
	}
	if d != DecisionBat && d != DecisionBowl {
		return fmt.Errorf("invalid decision %q", d)
	}
	e.p.Decision = d
	bat1 := e.p.TossWinner
	if d == DecisionBowl {
		bat1 = e.otherTeam(e.p.TossWinner)
	}
	e.p.Innings.Innings1.BattingTeam = bat1
	e.p.Innings.Innings1.BowlingTeam = e.otherTeam(bat1)
	e.p.Innings.Innings2.BattingTeam = e.otherTeam(bat1)
	e.p.Innings.Innings2.BowlingTeam = bat1
	e.p.Stage = StageOpeners
	return nil
}

// SetOpeners picks the two opening batters and the opening bowler, then
// starts play for the current innings.
func (e *Engine) SetOpeners(strikerID, nonStrikerID, bowlerID string) error {
	if e.p.Stage != StageOpeners {
		return ErrWrongStage
	}
	if strikerID == nonStrikerID {
		return errors.New("openers must be two different batsmen")
	}
	inn := e.currentInnings()
	for _, id := range []string{strikerID, nonStrikerID} {
		if !e.onTeam(inn.BattingTeam, id) {
			return fmt.Errorf("player %s is not in the batting team", id)
		}
	}
	if !e.onTeam(inn.BowlingTeam, bowlerID) {
		return fmt.Errorf("player %s is not in the bowling team", bowlerID)
	}
	target := 0
	if e.p.CurrentInnings == 2 {
		target = e.p.Innings.Innings1.Score + 1
	}
	e.p.Live = LiveState{
		OnStrikeBatsmanID:  strikerID,
		OffStrikeBatsmanID: nonStrikerID,
		CurrentBowlerID:    bowlerID,
		CurrentOverEvents:  []string{},
		Target:             target,
	}
	e.p.UndoStack = nil
	e.p.Stage = StagePlay
	return nil
}

// SelectBatsman fills the vacant striker's end after a wicket.
func (e *Engine) SelectBatsman(id string) error {
	return e.fillVacancy(id, true)
}

// SelectNonStriker fills the vacant non-striker's end after a wicket.
func (e *Engine) SelectNonStriker(id string) error {
	return e.fillVacancy(id, false)
}

func (e *Engine) fillVacancy(id string, striker bool) error {
	if e.p.Stage != StagePlay {
		return ErrWrongStage
	}
	if striker && e.p.Live.OnStrikeBatsmanID != "" {
		return errors.New("striker's end is not vacant")
	}
	if !striker && e.p.Live.OffStrikeBatsmanID != "" {
		return errors.New("non-striker's end is not vacant")
	}
	inn := e.currentInnings()
	if !e.onTeam(inn.BattingTeam, id) {
		return fmt.Errorf("player %s is not in the batting team", id)
	}
	if bs, ok := inn.BatsmenStats[id]; !ok || bs.IsOut {
		return fmt.Errorf("player %s is already out", id)
	}
	if id == e.p.Live.OnStrikeBatsmanID || id == e.p.Live.OffStrikeBatsmanID {
		return fmt.Errorf("player %s is already at the crease", id)
	}
	if striker {
		e.p.Live.OnStrikeBatsmanID = id
	} else {
		e.p.Live.OffStrikeBatsmanID = id
	}
	return nil
}

// SelectBowler starts a new over. A bowler may not bowl two overs in a row;
// picking the new bowler resets the undo stack, so undo never crosses an
// over boundary.
func (e *Engine) SelectBowler(id string) error {
	if e.p.Stage != StagePlay {
		return ErrWrongStage
	}
	if e.p.Live.CurrentBowlerID != "" {
		return errors.New("an over is already in progress")
	}
	inn := e.currentInnings()
	if !e.onTeam(inn.BowlingTeam, id) {
		return fmt.Errorf("player %s is not in the bowling team", id)
	}
	if id == e.p.Live.PreviousBowlerID {
		return fmt.Errorf("player %s bowled the previous over and cannot bowl consecutive overs", id)
	}
	e.p.Live.CurrentBowlerID = id
	e.p.UndoStack = nil
	return nil
}

// BeginSecondInnings moves from the innings break to the openers stage for
// the chase, fixing the target.
func (e *Engine) BeginSecondInnings() error {
	if e.p.Stage != StageInningsBreak {
		return ErrWrongStage
	}
	e.p.CurrentInnings = 2
	e.p.Live = LiveState{
		Target:            e.p.Innings.Innings1.Score + 1,
		CurrentOverEvents: []string{},
	}
	e.p.UndoStack = nil
	e.p.Stage = StageOpeners
	return nil
}

// Undo restores the state snapshot taken before the most recent ball. It
// fails (reported, not fatal) when the stack is empty or a new over has
// begun since.
func (e *Engine) Undo() error {
	if e.p.Stage != StagePlay {
		return ErrWrongStage
	}
	if len(e.p.UndoStack) == 0 {
		return ErrNothingToUndo
	}
	last := e.p.UndoStack[len(e.p.UndoStack)-1]
	e.p.UndoStack = e.p.UndoStack[:len(e.p.UndoStack)-1]
	e.p.Innings = last.Innings
	e.p.Live = last.Live
	e.p.FastestBall = last.FastestBall
	return nil
}

// currentInnings returns the ledger being batted on right now.
func (e *Engine) currentInnings() *Innings {
	if e.p.CurrentInnings == 2 {
		return e.p.Innings.Innings2
	}
	return e.p.Innings.Innings1
}

func (e *Engine) otherTeam(name string) string {
	if name == e.cfg.Teams[0].Name {
		return e.cfg.Teams[1].Name
	}
	return e.cfg.Teams[0].Name
}

func (e *Engine) onTeam(teamName, playerID string) bool {
	for _, t := range e.cfg.Teams {
		if t.Name == teamName {
			for _, id := range t.PlayerIDs {
				if id == playerID {
					return true
				}
			}
		}
	}
	return false
}

func (e *Engine) teamPlayers(teamName string) []string {
	for _, t := range e.cfg.Teams {
		if t.Name == teamName {
			return t.PlayerIDs
		}
	}
	return nil
}

// AvailableBatsmen lists batting-team players who are not out and not at the
// crease, i.e. the candidates for an incoming batsman selection.
func (e *Engine) AvailableBatsmen() []string {
	inn := e.currentInnings()
	var out []string
	for _, id := range e.teamPlayers(inn.BattingTeam) {
		bs := inn.BatsmenStats[id]
		if bs != nil && !bs.IsOut && id != e.p.Live.OnStrikeBatsmanID && id != e.p.Live.OffStrikeBatsmanID {
			out = append(out, id)
		}
	}
	return out
}

// AvailableBowlers lists bowling-team players eligible for the next over.
func (e *Engine) AvailableBowlers() []string {
	inn := e.currentInnings()
	var out []string
	for _, id := range e.teamPlayers(inn.BowlingTeam) {
		if id != e.p.Live.CurrentBowlerID && id != e.p.Live.PreviousBowlerID {
			out = append(out, id)
		}
	}
	return out
}

func (e *Engine) maxWickets() int {
	if e.p.SuperOver {
		return maxWicketsSuperOver
	}
	return maxWicketsInnings
}

func (e *Engine) maxBalls() int {
	if e.p.SuperOver {
		return superOverBalls
	}
	if e.cfg.TotalOvers <= 0 {
		return 0 // unlimited
	}
	return e.cfg.TotalOvers * 6
}

// PlayBall processes one delivery through the full rule set: ledger
// mutations, free-hit suppression, run-out resolution, strike rotation,
// over/innings/match end detection. The event must be well-formed; invalid
// selections are rejected before any mutation.
func (e *Engine) PlayBall(ev BallEvent) error {
	if e.p.Stage == StageMatchOver {
		return ErrMatchOver
	}
	if e.p.Stage != StagePlay {
		return ErrWrongStage
	}
	live := &e.p.Live
	if live.OnStrikeBatsmanID == "" || live.OffStrikeBatsmanID == "" || live.CurrentBowlerID == "" {
		return ErrSelectionRequired
	}
	if err := ev.Validate(); err != nil {
		return err
	}
	inn := e.currentInnings()
	if ev.Dismissal != nil {
		if err := e.validateDismissal(inn, ev.Dismissal); err != nil {
			return err
		}
	}

	// Snapshot for undo before any mutation.
	snap := UndoSnapshot{Innings: e.p.Innings.Clone(), Live: live.Clone()}
	if e.p.FastestBall != nil {
		fb := *e.p.FastestBall
		snap.FastestBall = &fb
	}
	e.p.UndoStack = append(e.p.UndoStack, snap)

	striker := live.OnStrikeBatsmanID
	nonStriker := live.OffStrikeBatsmanID
	bowler := live.CurrentBowlerID
	isWicketEvent := ev.Dismissal != nil

	// Ledger mutations.
	runsScored := 0
	switch ev.Kind {
	case EventRuns, EventShortRun:
		runsScored = ev.Runs
	case EventWicket:
		if ev.Dismissal.Kind == DismissalRunOut {
			runsScored = ev.Runs
		}
	}
	if runsScored > 0 {
		inn.addRuns(striker, bowler, runsScored, ev.Kind != EventShortRun)
	} else if ev.Kind == EventWide || ev.Kind == EventNoBall {
		inn.addExtra(ev.Kind, ev.ExtraRuns, bowler, striker)
	}
	if ev.isLegal() {
		inn.recordLegalBall(bowler, striker)
		if ev.Speed > 0 {
			if e.p.FastestBall == nil || ev.Speed > e.p.FastestBall.Speed {
				e.p.FastestBall = &FastestBall{BowlerID: bowler, Speed: ev.Speed}
			}
		}
	}

	// Wicket, unless suppressed by a free hit.
	wicketRecorded := false
	batsmanOutID := ""
	if isWicketEvent {
		batsmanOutID = ev.Dismissal.BatsmanOutID
		if batsmanOutID == "" {
			batsmanOutID = striker
		}
		protected := ev.Dismissal.Kind == DismissalBowled ||
			ev.Dismissal.Kind == DismissalCaught ||
			ev.Dismissal.Kind == DismissalLBW
		if live.IsFreeHit && protected {
			batsmanOutID = "" // free hit: the batsman survives
		} else {
			inn.recordWicket(batsmanOutID, ev.Dismissal.Kind, bowler, ev.Dismissal.FielderID)
			wicketRecorded = true
		}
	}

	overEvents := append(live.CurrentOverEvents, ev.label())

	// Innings/match end conditions, checked in priority order.
	available := inn.notOutCount(e.teamPlayers(inn.BattingTeam))
	inningsOver := inn.Wickets >= e.maxWickets() ||
		(e.maxBalls() > 0 && inn.TotalLegalBalls >= e.maxBalls()) ||
		(available <= 1 && !isWicketEvent)
	targetReached := e.p.CurrentInnings == 2 && live.Target > 0 && inn.Score >= live.Target

	if targetReached {
		e.finishChase(inn)
		return nil
	}
	if inningsOver {
		e.finishInnings(inn)
		return nil
	}

	// Batsman positions for the next ball.
	nextStriker, nextNonStriker := striker, nonStriker
	if wicketRecorded {
		if ev.Dismissal.Kind == DismissalRunOut {
			nextStriker, nextNonStriker = resolveRunOut(
				striker, nonStriker, batsmanOutID, ev.Dismissal.NewBatsmanID,
				ev.Runs, ev.Dismissal.Crossed)
		} else if batsmanOutID == striker {
			nextStriker, nextNonStriker = "", nonStriker
		} else {
			nextStriker, nextNonStriker = striker, ""
		}
	} else {
		runsForRotation := 0
		switch ev.Kind {
		case EventShortRun:
			runsForRotation = ev.Attempted
		case EventRuns:
			runsForRotation = ev.Runs
		case EventWide, EventNoBall:
			runsForRotation = ev.ExtraRuns
		}
		if runsForRotation%2 != 0 {
			nextStriker, nextNonStriker = nextNonStriker, nextStriker
		}
	}

	// A no-ball grants a free hit; a wide keeps an existing one alive.
	nextFreeHit := ev.Kind == EventNoBall || (live.IsFreeHit && ev.Kind == EventWide)

	legalInOver := 0
	for _, l := range overEvents {
		if labelIsLegal(l) {
			legalInOver++
		}
	}
	overEnd := ev.isLegal() && legalInOver > 0 && legalInOver%6 == 0
	if overEnd {
		// End-of-over rotation composes with the run-parity rotation.
		nextStriker, nextNonStriker = nextNonStriker, nextStriker
	}

	live.OnStrikeBatsmanID = nextStriker
	live.OffStrikeBatsmanID = nextNonStriker
	if overEnd {
		live.PreviousBowlerID = bowler
		live.CurrentBowlerID = ""
		live.CurrentOverEvents = []string{}
	} else {
		live.CurrentOverEvents = overEvents
	}
	live.IsFreeHit = nextFreeHit
	return nil
}

func (e *Engine) validateDismissal(inn *Innings, d *Dismissal) error {
	live := e.p.Live
	if d.Kind == DismissalRunOut {
		if d.BatsmanOutID != live.OnStrikeBatsmanID && d.BatsmanOutID != live.OffStrikeBatsmanID {
			return fmt.Errorf("run out batsman %s is not at the crease", d.BatsmanOutID)
		}
		if nb := d.NewBatsmanID; nb != "" {
			if nb == live.OnStrikeBatsmanID || nb == live.OffStrikeBatsmanID {
				return fmt.Errorf("replacement batsman %s is already at the crease", nb)
			}
			if !e.onTeam(inn.BattingTeam, nb) {
				return fmt.Errorf("replacement batsman %s is not in the batting team", nb)
			}
			if bs, ok := inn.BatsmenStats[nb]; !ok || bs.IsOut {
				return fmt.Errorf("replacement batsman %s is already out", nb)
			}
		} else if inn.Wickets+1 < e.maxWickets() && len(e.AvailableBatsmen()) > 0 {
			// No replacement named but one exists and the innings survives
			// the wicket.
			return fmt.Errorf("run out requires the replacement batsman")
		}
	}
	if d.FielderID != "" && !e.onTeam(inn.BowlingTeam, d.FielderID) {
		return fmt.Errorf("fielder %s is not in the bowling team", d.FielderID)
	}
	return nil
}

// resolveRunOut works out which surviving batsman keeps the strike. The
// completed-run parity puts the pair at notional ends; crossing during the
// fatal attempt swaps the survivor once more; the replacement takes
// whichever end is left.
func resolveRunOut(striker, nonStriker, outID, newID string, runsCompleted int, crossed bool) (nextStriker, nextNonStriker string) {
	notOut := nonStriker
	if outID == nonStriker {
		notOut = striker
	}
	strikerAfterRuns := striker
	if runsCompleted%2 != 0 {
		strikerAfterRuns = nonStriker
	}
	survivorAtStrikerEnd := notOut == strikerAfterRuns
	if crossed {
		survivorAtStrikerEnd = !survivorAtStrikerEnd
	}
	if survivorAtStrikerEnd {
		return notOut, newID
	}
	return newID, notOut
}

// finishChase ends the match the moment the batting side passes the target.
func (e *Engine) finishChase(inn *Innings) {
	winner := inn.BattingTeam
	if e.p.SuperOver {
		result := winner + " won in Super Over"
		e.closeSuperOver(result)
		e.endMatch(winner, result)
		return
	}
	wicketsRemaining := e.maxWickets() - inn.Wickets
	result := fmt.Sprintf("%s won by %d wicket%s", winner, wicketsRemaining, plural(wicketsRemaining))
	e.endMatch(winner, result)
}

// finishInnings handles the wickets/overs/batters-exhausted endings.
func (e *Engine) finishInnings(inn *Innings) {
	if e.p.CurrentInnings == 1 {
		e.p.Stage = StageInningsBreak
		return
	}
	if e.p.SuperOver {
		score1, score2 := e.p.Innings.Innings1.Score, e.p.Innings.Innings2.Score
		switch {
		case score1 > score2:
			winner := e.p.Innings.Innings1.BattingTeam
			result := winner + " won in Super Over"
			e.closeSuperOver(result)
			e.endMatch(winner, result)
		case score2 > score1:
			winner := e.p.Innings.Innings2.BattingTeam
			result := winner + " won in Super Over"
			e.closeSuperOver(result)
			e.endMatch(winner, result)
		default:
			e.closeSuperOver("Super Over Tied")
			if len(e.p.TieBreakers) < 2 {
				// One more attempt; a second consecutive tie settles it.
				e.p.Innings = InningsPair{
					Innings1: NewInnings(e.players, "", ""),
					Innings2: NewInnings(e.players, "", ""),
				}
				e.p.Live = LiveState{CurrentOverEvents: []string{}}
				e.p.UndoStack = nil
				e.p.Stage = StageTieBreakerSelection
			} else {
				e.endMatch("", "Match Tied after multiple Super Overs")
			}
		}
		return
	}
	if inn.Score == e.p.Live.Target-1 {
		tied := e.p.Innings.Clone()
		e.p.TiedInnings = &tied
		e.p.Stage = StageTieBreakerSelection
		return
	}
	winner := inn.BowlingTeam
	margin := e.p.Live.Target - 1 - inn.Score
	result := fmt.Sprintf("%s won by %d run%s", winner, margin, plural(margin))
	e.endMatch(winner, result)
}

// closeSuperOver stamps the running tie-breaker with its innings and result.
func (e *Engine) closeSuperOver(result string) {
	if len(e.p.TieBreakers) == 0 {
		return
	}
	so := e.p.Innings.Clone()
	tb := &e.p.TieBreakers[len(e.p.TieBreakers)-1]
	tb.SuperOver = &so
	tb.ResultDescription = result
}

// ChooseTieBreaker starts a Super Over or a Bowl Out after a tied finish.
// The Super Over flips the batting order of the main match.
func (e *Engine) ChooseTieBreaker(kind TieBreakerType) error {
	if e.p.Stage != StageTieBreakerSelection {
		return ErrWrongStage
	}
	switch kind {
	case TieBreakerSuperOver:
		e.p.TieBreakers = append(e.p.TieBreakers, TieBreaker{Type: TieBreakerSuperOver})
		batFirst := e.tiedInnings().Innings2.BattingTeam
		bowlFirst := e.tiedInnings().Innings1.BattingTeam
		e.p.SuperOver = true
		e.p.CurrentInnings = 1
		e.p.Innings = InningsPair{
			Innings1: NewInnings(e.players, batFirst, bowlFirst),
			Innings2: NewInnings(e.players, bowlFirst, batFirst),
		}
		e.p.Live = LiveState{CurrentOverEvents: []string{}}
		e.p.UndoStack = nil
		e.p.Stage = StageOpeners
	case TieBreakerBowlOut:
		e.p.TieBreakers = append(e.p.TieBreakers, TieBreaker{Type: TieBreakerBowlOut})
		e.p.BowlOut = &BowlOutState{
			CurrentTeam: e.cfg.Teams[0].Name,
			CurrentTurn: 1,
		}
		e.p.Stage = StageBowlOutPlay
	default:
		return fmt.Errorf("unknown tie breaker %q", kind)
	}
	return nil
}

// DeclareTie finishes the match as a permanent tie from the selection stage.
func (e *Engine) DeclareTie() error {
	if e.p.Stage != StageTieBreakerSelection {
		return ErrWrongStage
	}
	e.endMatch("", "Match Tied")
	return nil
}

// tiedInnings returns the main-match innings preserved when the tie was
// detected; before any tie-break it is simply the current pair.
func (e *Engine) tiedInnings() *InningsPair {
	if e.p.TiedInnings != nil {
		return e.p.TiedInnings
	}
	return &e.p.Innings
}

// endMatch freezes the result. Winner is empty for a tie.
func (e *Engine) endMatch(winner, description string) {
	final := e.p.Innings
	if e.p.SuperOver || e.p.BowlOut != nil {
		final = *e.tiedInnings()
	}
	res := &Result{
		Winner:            winner,
		ResultDescription: description,
		Innings:           final,
		TieBreakers:       e.p.TieBreakers,
		FastestBall:       e.p.FastestBall,
	}
	res.ManOfTheMatchID = manOfTheMatch(e.players, e.teamPlayers(winner), &res.Innings, res.TieBreakers)
	e.result = res
	e.p.Stage = StageMatchOver
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
