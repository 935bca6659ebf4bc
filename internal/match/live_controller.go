package match

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/live"
	"github.com/bccpune/crickclub/internal/scoring"
	"github.com/bccpune/crickclub/pkg/responses"
	"github.com/bccpune/crickclub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// LiveController drives ball-by-ball scoring. Every operation loads the
// match, rebuilds the engine from the persisted progress, applies one event,
// saves the progress back and broadcasts the new scoreboard. One event is
// processed to completion before the next is accepted.
type LiveController struct {
	repo   MatchRepository
	hub    *live.Hub
	config *config.Config
	clock  clockwork.Clock
}

func NewLiveController(repo MatchRepository, hub *live.Hub, cfg *config.Config, clock clockwork.Clock) *LiveController {
	return &LiveController{repo: repo, hub: hub, config: cfg, clock: clock}
}

// Scoreboard is the live projection pushed to websocket subscribers and
// returned from every scoring operation.
type Scoreboard struct {
	MatchID  string            `json:"match_id"`
	TeamA    string            `json:"team_a"`
	TeamB    string            `json:"team_b"`
	Status   Status            `json:"status"`
	Progress *scoring.Progress `json:"progress,omitempty"`
	Result   *scoring.Result   `json:"result,omitempty"`
}

func (lc *LiveController) scoreboard(m *Match) Scoreboard {
	return Scoreboard{
		MatchID:  m.ID,
		TeamA:    m.TeamA,
		TeamB:    m.TeamB,
		Status:   m.Status,
		Progress: m.LiveProgress.Progress,
		Result:   m.Result.Result,
	}
}

func (lc *LiveController) broadcast(m *Match) {
	payload, err := json.Marshal(lc.scoreboard(m))
	if err != nil {
		log.Error().Err(err).Str("match_id", m.ID).Msg("scoreboard marshal failed")
		return
	}
	lc.hub.Broadcast(m.ID, payload)
}

// loadLive fetches a match that must be in the live state.
func (lc *LiveController) loadLive(c *gin.Context) (*Match, bool) {
	m, err := lc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return nil, false
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return nil, false
	}
	if m.Status != StatusLive || m.LiveProgress.Progress == nil {
		responses.Conflict(c, ErrNotLive.Error())
		return nil, false
	}
	return m, true
}

// apply runs one engine operation against a live match and persists the
// outcome. Engine rejections come back as 400s without touching state.
func (lc *LiveController) apply(c *gin.Context, op func(e *scoring.Engine) error) {
	m, ok := lc.loadLive(c)
	if !ok {
		return
	}

	engine, err := scoring.Resume(m.ScoringConfig(), *m.LiveProgress.Progress)
	if err != nil {
		log.Error().Err(err).Str("match_id", m.ID).Msg("engine resume failed")
		responses.InternalServerError(c, "Failed to resume live scoring")
		return
	}

	if err := op(engine); err != nil {
		if errors.Is(err, scoring.ErrWrongStage) || errors.Is(err, scoring.ErrMatchOver) {
			responses.Conflict(c, err.Error())
			return
		}
		responses.BadRequest(c, err.Error())
		return
	}

	progress := engine.Progress()
	m.LiveProgress = ProgressColumn{Progress: &progress}
	if res := engine.Result(); res != nil {
		lc.finalize(m, res)
	}

	if err := lc.repo.Update(m); err != nil {
		log.Error().Err(err).Str("match_id", m.ID).Msg("failed to save live progress")
		responses.InternalServerError(c, "Failed to save live progress")
		return
	}

	lc.broadcast(m)
	responses.SendSuccess(c, http.StatusOK, "", lc.scoreboard(m))
}

// finalize freezes a finished match: the live progress is cleared and the
// frozen result takes over. The losing side owes the match fee, so winners
// are exempted; a tied finish exempts everyone at read time (fees.FeeView)
// without rewriting the stored statuses.
func (lc *LiveController) finalize(m *Match, res *scoring.Result) {
	now := lc.clock.Now()
	m.Status = StatusCompleted
	m.CompletedAt = &now
	m.Winner = res.Winner
	m.ResultSummary = res.ResultDescription
	m.ManOfTheMatchID = res.ManOfTheMatchID
	m.Result = ResultColumn{Result: res}
	m.LiveProgress = ProgressColumn{}

	if res.Winner == "" {
		return
	}
	winners := m.TeamAPlayerIDs
	if res.Winner == m.TeamB {
		winners = m.TeamBPlayerIDs
	}
	for _, id := range winners {
		m.Fees[id] = FeeExempt
	}
}

// StartLive godoc
// @Summary Start live scoring for a scheduled match
// @Tags Live Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Failure 409 {object} responses.ErrorResponse
// @Router /matches/{id}/live/start [post]
// @Security BearerAuth
func (lc *LiveController) StartLive(c *gin.Context) {
	m, err := lc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	if m.Status != StatusScheduled {
		responses.Conflict(c, "Only a scheduled match can go live")
		return
	}

	engine, err := scoring.NewEngine(m.ScoringConfig())
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	now := lc.clock.Now()
	progress := engine.Progress()
	m.Status = StatusLive
	m.StartedAt = &now
	m.LiveProgress = ProgressColumn{Progress: &progress}

	if err := lc.repo.Update(m); err != nil {
		responses.InternalServerError(c, "Failed to start live scoring")
		return
	}
	lc.broadcast(m)
	responses.SendSuccess(c, http.StatusOK, "Live scoring started", lc.scoreboard(m))
}

// Toss godoc
// @Summary Flip the coin
// @Tags Live Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/toss [post]
// @Security BearerAuth
func (lc *LiveController) Toss(c *gin.Context) {
	lc.apply(c, func(e *scoring.Engine) error {
		_, err := e.Toss()
		return err
	})
}

type DecisionRequest struct {
	Decision scoring.Decision `json:"decision" binding:"required,oneof=Bat Bowl"`
}

// Decide godoc
// @Summary Record the toss winner's decision
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param decision body DecisionRequest true "Bat or Bowl"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/decision [post]
// @Security BearerAuth
func (lc *LiveController) Decide(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		return e.Decide(req.Decision)
	})
}

type OpenersRequest struct {
	StrikerID    string `json:"striker_id" binding:"required"`
	NonStrikerID string `json:"non_striker_id" binding:"required"`
	BowlerID     string `json:"bowler_id" binding:"required"`
}

// SetOpeners godoc
// @Summary Pick the opening batsmen and bowler
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param openers body OpenersRequest true "Opening selections"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/openers [post]
// @Security BearerAuth
func (lc *LiveController) SetOpeners(c *gin.Context) {
	var req OpenersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		return e.SetOpeners(req.StrikerID, req.NonStrikerID, req.BowlerID)
	})
}

// PlayBall godoc
// @Summary Score one delivery
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param event body scoring.BallEvent true "Ball event"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches/{id}/live/ball [post]
// @Security BearerAuth
func (lc *LiveController) PlayBall(c *gin.Context) {
	var ev scoring.BallEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		return e.PlayBall(ev)
	})
}

// Undo godoc
// @Summary Undo the most recent ball of the current over
// @Tags Live Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Failure 400 {object} responses.ErrorResponse "Nothing to undo"
// @Router /matches/{id}/live/undo [post]
// @Security BearerAuth
func (lc *LiveController) Undo(c *gin.Context) {
	lc.apply(c, func(e *scoring.Engine) error {
		return e.Undo()
	})
}

type SelectionRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	// End is "striker" or "non_striker" for batsman selections.
	End string `json:"end" binding:"omitempty,oneof=striker non_striker"`
}

// SelectBatsman godoc
// @Summary Send in the next batsman
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param selection body SelectionRequest true "Incoming batsman"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/batsman [post]
// @Security BearerAuth
func (lc *LiveController) SelectBatsman(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		if req.End == "non_striker" {
			return e.SelectNonStriker(req.PlayerID)
		}
		return e.SelectBatsman(req.PlayerID)
	})
}

// SelectBowler godoc
// @Summary Pick the bowler for the next over
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param selection body SelectionRequest true "Next bowler"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/bowler [post]
// @Security BearerAuth
func (lc *LiveController) SelectBowler(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		return e.SelectBowler(req.PlayerID)
	})
}

// BeginSecondInnings godoc
// @Summary Move from the innings break to the chase
// @Tags Live Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/second-innings [post]
// @Security BearerAuth
func (lc *LiveController) BeginSecondInnings(c *gin.Context) {
	lc.apply(c, func(e *scoring.Engine) error {
		return e.BeginSecondInnings()
	})
}

type TieBreakerRequest struct {
	Type scoring.TieBreakerType `json:"type" binding:"required"`
}

// ChooseTieBreaker godoc
// @Summary Choose Super Over or Bowl Out after a tie
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param choice body TieBreakerRequest true "Tie breaker type"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/tie-breaker [post]
// @Security BearerAuth
func (lc *LiveController) ChooseTieBreaker(c *gin.Context) {
	var req TieBreakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		return e.ChooseTieBreaker(req.Type)
	})
}

// DeclareTie godoc
// @Summary Finish a tied match without a tie breaker
// @Tags Live Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/declare-tie [post]
// @Security BearerAuth
func (lc *LiveController) DeclareTie(c *gin.Context) {
	lc.apply(c, func(e *scoring.Engine) error {
		return e.DeclareTie()
	})
}

type BowlOutBowlersRequest struct {
	TeamABowlers []string `json:"team_a_bowlers" binding:"required"`
	TeamBBowlers []string `json:"team_b_bowlers" binding:"required"`
}

// NominateBowlOutBowlers godoc
// @Summary Nominate five bowlers per side for the bowl out
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param bowlers body BowlOutBowlersRequest true "Nominated bowlers in order"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/bowl-out/bowlers [post]
// @Security BearerAuth
func (lc *LiveController) NominateBowlOutBowlers(c *gin.Context) {
	var req BowlOutBowlersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		return e.NominateBowlOutBowlers(req.TeamABowlers, req.TeamBBowlers)
	})
}

type BowlOutAttemptRequest struct {
	Outcome scoring.BowlOutOutcome `json:"outcome" binding:"required,oneof=Hit Miss"`
}

// RecordBowlOutAttempt godoc
// @Summary Record one bowl-out delivery
// @Tags Live Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param attempt body BowlOutAttemptRequest true "Hit or Miss"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/live/bowl-out/attempt [post]
// @Security BearerAuth
func (lc *LiveController) RecordBowlOutAttempt(c *gin.Context) {
	var req BowlOutAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	lc.apply(c, func(e *scoring.Engine) error {
		return e.RecordBowlOutAttempt(req.Outcome)
	})
}

// GetScoreboard godoc
// @Summary Current scoreboard projection
// @Tags Live Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Scoreboard}
// @Router /matches/{id}/scoreboard [get]
func (lc *LiveController) GetScoreboard(c *gin.Context) {
	m, err := lc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", lc.scoreboard(m))
}

// WatchLive godoc
// @Summary Subscribe to live score updates over websocket
// @Tags Live Scoring
// @Param id path string true "Match ID"
// @Router /matches/{id}/live/ws [get]
func (lc *LiveController) WatchLive(c *gin.Context) {
	m, err := lc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	if err := lc.hub.ServeWS(c.Writer, c.Request, m.ID); err != nil {
		log.Error().Err(err).Str("match_id", m.ID).Msg("websocket upgrade failed")
	}
}
