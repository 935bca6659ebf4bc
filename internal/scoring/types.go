package scoring

// Core domain types for live cricket scoring. This package is pure state:
// no HTTP, no persistence. The match engine in engine.go drives these.

// DismissalKind identifies how a batsman got out.
type DismissalKind string

const (
	DismissalBowled DismissalKind = "Bowled"
	DismissalCaught DismissalKind = "Caught"
	DismissalLBW    DismissalKind = "LBW"
	DismissalRunOut DismissalKind = "Run Out"
)

// BatsmanStats is one batsman's ledger line for a single innings.
type BatsmanStats struct {
	Runs   int           `json:"runs"`
	Balls  int           `json:"balls"`
	IsOut  bool          `json:"is_out"`
	Fours  int           `json:"fours"`
	Sixes  int           `json:"sixes"`
	HowOut DismissalKind `json:"how_out,omitempty"`
	// FielderID is set for catches and run outs.
	FielderID string `json:"fielder_id,omitempty"`
	// BowlerID is the bowler credited with the wicket (not set for run outs).
	BowlerID string `json:"bowler_id,omitempty"`
}

// BowlerStats is one bowler's ledger line for a single innings.
type BowlerStats struct {
	BallsBowled  int `json:"balls_bowled"`
	RunsConceded int `json:"runs_conceded"`
	Wickets      int `json:"wickets"`
}

// FallOfWicket snapshots the score when a wicket fell.
type FallOfWicket struct {
	Score     int    `json:"score"`
	Wicket    int    `json:"wicket"`
	BatsmanID string `json:"batsman_id"`
}

// Innings is one team's batting effort: a normal innings or a Super Over
// innings. Stats maps are pre-populated for every match player so bowler
// and batsman lookups never miss.
type Innings struct {
	BattingTeam     string                   `json:"batting_team"`
	BowlingTeam     string                   `json:"bowling_team"`
	Score           int                      `json:"score"`
	Wickets         int                      `json:"wickets"`
	TotalLegalBalls int                      `json:"total_legal_balls"`
	BatsmenStats    map[string]*BatsmanStats `json:"batsmen_stats"`
	BowlerStats     map[string]*BowlerStats  `json:"bowler_stats"`
	FallOfWickets   []FallOfWicket           `json:"fall_of_wickets"`
}

// InningsPair holds the two innings of a match segment.
type InningsPair struct {
	Innings1 *Innings `json:"innings1,omitempty"`
	Innings2 *Innings `json:"innings2,omitempty"`
}

// LiveState is the transient ball-level cursor for the innings in progress.
// Empty ID fields mean the engine is blocked waiting on a selection.
type LiveState struct {
	OnStrikeBatsmanID  string   `json:"on_strike_batsman_id"`
	OffStrikeBatsmanID string   `json:"off_strike_batsman_id"`
	CurrentBowlerID    string   `json:"current_bowler_id"`
	PreviousBowlerID   string   `json:"previous_bowler_id"`
	CurrentOverEvents  []string `json:"current_over_events"`
	Target             int      `json:"target"`
	IsFreeHit          bool     `json:"is_free_hit"`
}

// FastestBall records the quickest delivery of the match so far.
type FastestBall struct {
	BowlerID string  `json:"bowler_id"`
	Speed    float64 `json:"speed"`
}

// TieBreakerType tags a tie-break procedure.
type TieBreakerType string

const (
	TieBreakerSuperOver TieBreakerType = "Super Over"
	TieBreakerBowlOut   TieBreakerType = "Bowl Out"
)

// BowlOutOutcome is the result of a single bowl-out delivery.
type BowlOutOutcome string

const (
	BowlOutHit  BowlOutOutcome = "Hit"
	BowlOutMiss BowlOutOutcome = "Miss"
)

// BowlOutAttempt is one delivery at the unguarded stumps.
type BowlOutAttempt struct {
	TeamName string         `json:"team_name"`
	BowlerID string         `json:"bowler_id"`
	Outcome  BowlOutOutcome `json:"outcome"`
}

// TieBreaker captures one tie-break procedure and its result. The list on a
// match can grow past one entry when a tie-break itself ties.
type TieBreaker struct {
	Type              TieBreakerType   `json:"type"`
	SuperOver         *InningsPair     `json:"super_over,omitempty"`
	BowlOutAttempts   []BowlOutAttempt `json:"bowl_out_attempts,omitempty"`
	ResultDescription string           `json:"result_description,omitempty"`
}

// BowlOutState tracks an in-progress bowl out.
type BowlOutState struct {
	Attempts     []BowlOutAttempt `json:"attempts"`
	CurrentTeam  string           `json:"current_team"`
	CurrentTurn  int              `json:"current_turn"`
	TeamABowlers []string         `json:"team_a_bowlers"`
	TeamBBowlers []string         `json:"team_b_bowlers"`
}

// Stage is the engine's current position in the match state machine.
type Stage string

const (
	StageToss                Stage = "toss"
	StageDecision            Stage = "decision"
	StageOpeners             Stage = "openers"
	StagePlay                Stage = "play"
	StageInningsBreak        Stage = "innings_break"
	StageTieBreakerSelection Stage = "tie_breaker_selection"
	StageBowlOutPlay         Stage = "bowl_out_play"
	StageMatchOver           Stage = "match_over"
)

// Decision is the toss winner's choice.
type Decision string

const (
	DecisionBat  Decision = "Bat"
	DecisionBowl Decision = "Bowl"
)

// UndoSnapshot is the state captured before one delivery, restored by an
// undo. The stack is scoped to the current over and travels with the
// progress, so undo survives a restart between balls.
type UndoSnapshot struct {
	Innings     InningsPair  `json:"innings"`
	Live        LiveState    `json:"live_state"`
	FastestBall *FastestBall `json:"fastest_ball,omitempty"`
}

// Progress is everything needed to resume a live match after a restart.
// It is persisted after every processed event.
type Progress struct {
	Stage          Stage          `json:"stage"`
	CurrentInnings int            `json:"current_innings"`
	Innings        InningsPair    `json:"innings"`
	Live           LiveState      `json:"live_state"`
	SuperOver      bool           `json:"super_over"`
	TiedInnings    *InningsPair   `json:"tied_innings,omitempty"`
	TieBreakers    []TieBreaker   `json:"tie_breakers,omitempty"`
	BowlOut        *BowlOutState  `json:"bowl_out,omitempty"`
	FastestBall    *FastestBall   `json:"fastest_ball,omitempty"`
	UndoStack      []UndoSnapshot `json:"undo_stack,omitempty"`
	TossWinner     string         `json:"toss_winner,omitempty"`
	Decision       Decision       `json:"decision,omitempty"`
}

// Result is the frozen outcome of a completed match. Winner is empty when the
// match finished as a tie.
type Result struct {
	Winner            string       `json:"winner,omitempty"`
	ResultDescription string       `json:"result_description"`
	Innings           InningsPair  `json:"innings"`
	TieBreakers       []TieBreaker `json:"tie_breakers,omitempty"`
	FastestBall       *FastestBall `json:"fastest_ball,omitempty"`
	ManOfTheMatchID   string       `json:"man_of_the_match_id,omitempty"`
}

// Clone returns a deep copy of the innings.
func (inn *Innings) Clone() *Innings {
	if inn == nil {
		return nil
	}
	cp := &Innings{
		BattingTeam:     inn.BattingTeam,
		BowlingTeam:     inn.BowlingTeam,
		Score:           inn.Score,
		Wickets:         inn.Wickets,
		TotalLegalBalls: inn.TotalLegalBalls,
		BatsmenStats:    make(map[string]*BatsmanStats, len(inn.BatsmenStats)),
		BowlerStats:     make(map[string]*BowlerStats, len(inn.BowlerStats)),
		FallOfWickets:   append([]FallOfWicket(nil), inn.FallOfWickets...),
	}
	for id, bs := range inn.BatsmenStats {
		c := *bs
		cp.BatsmenStats[id] = &c
	}
	for id, bs := range inn.BowlerStats {
		c := *bs
		cp.BowlerStats[id] = &c
	}
	return cp
}

// Clone returns a deep copy of the pair.
func (p InningsPair) Clone() InningsPair {
	return InningsPair{Innings1: p.Innings1.Clone(), Innings2: p.Innings2.Clone()}
}

// Clone returns a deep copy of the live state.
func (ls LiveState) Clone() LiveState {
	cp := ls
	cp.CurrentOverEvents = append([]string(nil), ls.CurrentOverEvents...)
	return cp
}

// Clone returns a deep copy of the snapshot.
func (s UndoSnapshot) Clone() UndoSnapshot {
	cp := UndoSnapshot{Innings: s.Innings.Clone(), Live: s.Live.Clone()}
	if s.FastestBall != nil {
		fb := *s.FastestBall
		cp.FastestBall = &fb
	}
	return cp
}
