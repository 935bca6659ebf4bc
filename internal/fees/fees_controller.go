package fees

import (
	"net/http"

	"github.com/bccpune/crickclub/internal/match"
	"github.com/bccpune/crickclub/internal/player"
	"github.com/bccpune/crickclub/pkg/responses"
	"github.com/bccpune/crickclub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// FeesController manages per-match fee statuses and reminder composition.
type FeesController struct {
	matches match.MatchRepository
	players player.PlayerRepository
}

func NewFeesController(matches match.MatchRepository, players player.PlayerRepository) *FeesController {
	return &FeesController{matches: matches, players: players}
}

func (fc *FeesController) loadMatch(c *gin.Context) (*match.Match, bool) {
	m, err := fc.matches.GetByID(c.Param("id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return nil, false
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return nil, false
	}
	return m, true
}

// GetMatchFees godoc
// @Summary Fee statuses for one match
// @Description Tied matches report every player as Exempt.
// @Tags Fees
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/fees [get]
func (fc *FeesController) GetMatchFees(c *gin.Context) {
	m, ok := fc.loadMatch(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"match_id":   m.ID,
		"fee_amount": m.FeeAmount,
		"fees":       FeeView(m),
		"collected":  CollectedForMatch(m),
	})
}

type UpdateFeesRequest struct {
	Fees map[string]match.FeeStatus `json:"fees" binding:"required"`
}

// UpdateMatchFees godoc
// @Summary Edit fee statuses for a match
// @Tags Fees
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param fees body UpdateFeesRequest true "Player id to fee status"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches/{id}/fees [put]
// @Security BearerAuth
func (fc *FeesController) UpdateMatchFees(c *gin.Context) {
	var req UpdateFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, ok := fc.loadMatch(c)
	if !ok {
		return
	}

	for id, status := range req.Fees {
		if _, member := m.Fees[id]; !member {
			responses.BadRequest(c, "Player "+id+" is not part of this match")
			return
		}
		switch status {
		case match.FeePaid, match.FeeUnpaid, match.FeeExempt:
		default:
			responses.BadRequest(c, "Unknown fee status "+string(status))
			return
		}
	}
	for id, status := range req.Fees {
		m.Fees[id] = status
	}

	if err := fc.matches.Update(m); err != nil {
		log.Error().Err(err).Str("match_id", m.ID).Msg("failed to update fees")
		responses.InternalServerError(c, "Failed to update fees")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Fees updated", FeeView(m))
}

// GetReminders godoc
// @Summary Compose fee reminder messages for outstanding players
// @Tags Fees
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/fees/reminders [get]
// @Security BearerAuth
func (fc *FeesController) GetReminders(c *gin.Context) {
	m, ok := fc.loadMatch(c)
	if !ok {
		return
	}

	names := make(map[string]string)
	if players, err := fc.players.GetByIDs(m.AllPlayerIDs()); err == nil {
		for _, p := range players {
			names[p.ID] = p.FullName
		}
	}

	reminders, group := ComposeReminders(m, names)
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"match_id":      m.ID,
		"reminders":     reminders,
		"group_message": group,
	})
}

// GetFeeSummary godoc
// @Summary Collection totals across completed matches
// @Tags Fees
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /fees/summary [get]
func (fc *FeesController) GetFeeSummary(c *gin.Context) {
	completed, err := fc.matches.GetAllCompleted()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}

	type matchLine struct {
		MatchID   string  `json:"match_id"`
		Teams     string  `json:"teams"`
		FeeAmount float64 `json:"fee_amount"`
		Collected float64 `json:"collected"`
	}
	lines := make([]matchLine, 0, len(completed))
	for i := range completed {
		m := &completed[i]
		lines = append(lines, matchLine{
			MatchID:   m.ID,
			Teams:     m.TeamA + " vs " + m.TeamB,
			FeeAmount: m.FeeAmount,
			Collected: CollectedForMatch(m),
		})
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"total_collected": TotalCollected(completed),
		"matches":         lines,
	})
}
