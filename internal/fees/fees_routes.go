package fees

import (
	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/match"
	"github.com/bccpune/crickclub/internal/middleware"
	"github.com/bccpune/crickclub/internal/player"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterFeesRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config, clock clockwork.Clock) {
	matches := match.NewMatchRepository(db)
	players := player.NewPlayerRepository(db)
	withdrawals := NewWithdrawalRepository(db)
	feesController := NewFeesController(matches, players)
	financeController := NewFinanceController(matches, withdrawals, clock)

	router.GET("/matches/:id/fees", feesController.GetMatchFees)
	router.GET("/fees/summary", feesController.GetFeeSummary)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))
	{
		protected.PUT("/matches/:id/fees", feesController.UpdateMatchFees)
		protected.GET("/matches/:id/fees/reminders", feesController.GetReminders)
		protected.GET("/finance/summary", financeController.GetFinanceSummary)
		protected.POST("/finance/withdrawals", financeController.CreateWithdrawal)
		protected.GET("/finance/withdrawals", financeController.GetWithdrawals)
	}
}
