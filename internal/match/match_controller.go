package match

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/player"
	"github.com/bccpune/crickclub/pkg/responses"
	"github.com/bccpune/crickclub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const minPlayersPerSide = 11

// MatchController handles scheduling and listing. Live scoring is in
// LiveController.
type MatchController struct {
	repo    MatchRepository
	players player.PlayerRepository
	config  *config.Config
	clock   clockwork.Clock
}

func NewMatchController(repo MatchRepository, players player.PlayerRepository, cfg *config.Config, clock clockwork.Clock) *MatchController {
	return &MatchController{repo: repo, players: players, config: cfg, clock: clock}
}

type TeamRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	PlayerIDs []string `json:"player_ids" binding:"required"`
	CaptainID string   `json:"captain_id" binding:"required"`
}

type CreateMatchRequest struct {
	TeamA       TeamRequest `json:"team_a" binding:"required"`
	TeamB       TeamRequest `json:"team_b" binding:"required"`
	ScheduledAt time.Time   `json:"scheduled_at" binding:"required"`
	Ground      string      `json:"ground" binding:"omitempty,max=200"`
	TotalOvers  int         `json:"total_overs" binding:"omitempty,min=0,max=50"`
	FeeAmount   float64     `json:"fee_amount" binding:"omitempty,min=0"`
}

type UpdateMatchRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Ground      string     `json:"ground" binding:"omitempty,max=200"`
	TotalOvers  *int       `json:"total_overs" binding:"omitempty,min=0,max=50"`
	FeeAmount   *float64   `json:"fee_amount" binding:"omitempty,min=0"`
}

// validateTeams enforces the scheduling invariants: two distinct named
// sides, eleven-plus players each, disjoint rosters, captains on their own
// roster, and every referenced player registered.
func (mc *MatchController) validateTeams(a, b TeamRequest) (string, bool) {
	if a.Name == b.Name {
		return "Team names must be distinct", false
	}
	if len(a.PlayerIDs) < minPlayersPerSide || len(b.PlayerIDs) < minPlayersPerSide {
		return fmt.Sprintf("Each team needs at least %d players", minPlayersPerSide), false
	}

	seen := make(map[string]bool, len(a.PlayerIDs)+len(b.PlayerIDs))
	for _, id := range append(append([]string{}, a.PlayerIDs...), b.PlayerIDs...) {
		if seen[id] {
			return "Rosters must be disjoint: player " + id + " appears twice", false
		}
		seen[id] = true
	}

	for _, t := range []TeamRequest{a, b} {
		onRoster := false
		for _, id := range t.PlayerIDs {
			if id == t.CaptainID {
				onRoster = true
				break
			}
		}
		if !onRoster {
			return "Captain of " + t.Name + " must be on its roster", false
		}
	}

	all := append(append([]string{}, a.PlayerIDs...), b.PlayerIDs...)
	registered, err := mc.players.GetByIDs(all)
	if err != nil {
		return "Failed to verify rosters", false
	}
	if len(registered) != len(all) {
		known := make(map[string]bool, len(registered))
		for _, p := range registered {
			known[p.ID] = true
		}
		for _, id := range all {
			if !known[id] {
				return "Player " + id + " is not registered", false
			}
		}
	}
	return "", true
}

// CreateMatch godoc
// @Summary Schedule a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match details"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches [post]
// @Security BearerAuth
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if msg, ok := mc.validateTeams(req.TeamA, req.TeamB); !ok {
		responses.BadRequest(c, msg)
		return
	}

	fee := req.FeeAmount
	if fee == 0 {
		fee = mc.config.Club.DefaultMatchFee
	}

	m := Match{
		ID:             uuid.NewString(),
		TeamA:          req.TeamA.Name,
		TeamB:          req.TeamB.Name,
		Ground:         req.Ground,
		Status:         StatusScheduled,
		ScheduledAt:    req.ScheduledAt,
		TotalOvers:     req.TotalOvers,
		FeeAmount:      fee,
		TeamAPlayerIDs: req.TeamA.PlayerIDs,
		TeamBPlayerIDs: req.TeamB.PlayerIDs,
		Captains: StringMap{
			req.TeamA.Name: req.TeamA.CaptainID,
			req.TeamB.Name: req.TeamB.CaptainID,
		},
		Fees: FeeMap{},
	}
	for _, id := range m.AllPlayerIDs() {
		m.Fees[id] = FeeUnpaid
	}

	if err := mc.repo.Create(&m); err != nil {
		log.Error().Err(err).Msg("failed to create match")
		responses.InternalServerError(c, "Failed to schedule match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match scheduled", m)
}

// GetMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Match}
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	matches, total, err := mc.repo.GetAll(page, pageSize, Status(c.Query("status")))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, pageSize)
}

// GetRecentCompleted godoc
// @Summary List recently completed matches
// @Description Completed matches inside the configured visibility window.
// @Tags Matches
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Match}
// @Router /matches/recent [get]
func (mc *MatchController) GetRecentCompleted(c *gin.Context) {
	cutoff := mc.clock.Now().AddDate(0, 0, -mc.config.Club.CompletedMatchVisibilityDays)
	matches, err := mc.repo.GetCompletedSince(cutoff)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", matches)
}

// GetMatch godoc
// @Summary Get one match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	m, err := mc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", m)
}

// UpdateMatch godoc
// @Summary Reschedule or amend a match before it starts
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 409 {object} responses.ErrorResponse
// @Router /matches/{id} [put]
// @Security BearerAuth
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	if m.Status != StatusScheduled {
		responses.Conflict(c, "Only scheduled matches can be amended")
		return
	}

	if req.ScheduledAt != nil {
		m.ScheduledAt = *req.ScheduledAt
	}
	if req.Ground != "" {
		m.Ground = req.Ground
	}
	if req.TotalOvers != nil {
		m.TotalOvers = *req.TotalOvers
	}
	if req.FeeAmount != nil {
		m.FeeAmount = *req.FeeAmount
	}

	if err := mc.repo.Update(m); err != nil {
		responses.InternalServerError(c, "Failed to update match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated", m)
}

// CancelMatch godoc
// @Summary Cancel a scheduled match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /matches/{id} [delete]
// @Security BearerAuth
func (mc *MatchController) CancelMatch(c *gin.Context) {
	m, err := mc.repo.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	if m.Status == StatusLive {
		responses.Conflict(c, "A live match cannot be cancelled")
		return
	}
	m.Status = StatusCancelled
	if err := mc.repo.Update(m); err != nil {
		responses.InternalServerError(c, "Failed to cancel match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match cancelled", m)
}
