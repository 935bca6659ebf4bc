package fees

import (
	"net/http"

	"github.com/bccpune/crickclub/internal/match"
	"github.com/bccpune/crickclub/pkg/responses"
	"github.com/bccpune/crickclub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// FinanceController tracks the club's fee pool: collections in, withdrawals
// out, never below zero.
type FinanceController struct {
	matches     match.MatchRepository
	withdrawals WithdrawalRepository
	clock       clockwork.Clock
}

func NewFinanceController(matches match.MatchRepository, withdrawals WithdrawalRepository, clock clockwork.Clock) *FinanceController {
	return &FinanceController{matches: matches, withdrawals: withdrawals, clock: clock}
}

func (fc *FinanceController) balance() (collected, withdrawn float64, err error) {
	completed, err := fc.matches.GetAllCompleted()
	if err != nil {
		return 0, 0, err
	}
	withdrawn, err = fc.withdrawals.TotalWithdrawn()
	if err != nil {
		return 0, 0, err
	}
	return TotalCollected(completed), withdrawn, nil
}

// GetFinanceSummary godoc
// @Summary Club balance: collected minus withdrawn
// @Tags Finance
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /finance/summary [get]
// @Security BearerAuth
func (fc *FinanceController) GetFinanceSummary(c *gin.Context) {
	collected, withdrawn, err := fc.balance()
	if err != nil {
		responses.InternalServerError(c, "Failed to compute balance")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"total_collected": collected,
		"total_withdrawn": withdrawn,
		"balance":         collected - withdrawn,
	})
}

type WithdrawalRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=500"`
}

// CreateWithdrawal godoc
// @Summary Withdraw from the fee pool
// @Description Rejected when the amount exceeds the current balance.
// @Tags Finance
// @Accept json
// @Produce json
// @Param withdrawal body WithdrawalRequest true "Withdrawal details"
// @Success 201 {object} responses.SuccessResponse{data=Withdrawal}
// @Failure 400 {object} responses.ErrorResponse "Amount exceeds balance"
// @Router /finance/withdrawals [post]
// @Security BearerAuth
func (fc *FinanceController) CreateWithdrawal(c *gin.Context) {
	var req WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	collected, withdrawn, err := fc.balance()
	if err != nil {
		responses.InternalServerError(c, "Failed to compute balance")
		return
	}
	if req.Amount > collected-withdrawn {
		responses.BadRequest(c, "Withdrawal amount exceeds the available balance")
		return
	}

	w := Withdrawal{
		ID:          uuid.NewString(),
		Amount:      req.Amount,
		Description: req.Description,
		WithdrawnAt: fc.clock.Now(),
	}
	if err := fc.withdrawals.Create(&w); err != nil {
		log.Error().Err(err).Msg("failed to record withdrawal")
		responses.InternalServerError(c, "Failed to record withdrawal")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Withdrawal recorded", w)
}

// GetWithdrawals godoc
// @Summary List withdrawals, newest first
// @Tags Finance
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Withdrawal}
// @Router /finance/withdrawals [get]
// @Security BearerAuth
func (fc *FinanceController) GetWithdrawals(c *gin.Context) {
	withdrawals, err := fc.withdrawals.GetAll()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch withdrawals")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", withdrawals)
}
