package player

import (
	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config, clock clockwork.Clock) {
	repo := NewPlayerRepository(db)
	controller := NewPlayerController(repo, cfg, clock)

	players := router.Group("/players")
	players.GET("", controller.GetPlayers)
	players.GET("/:id", controller.GetPlayer)

	protected := router.Group("/players")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))
	{
		protected.POST("", controller.CreatePlayer)
		protected.PUT("/:id", controller.UpdatePlayer)
		protected.DELETE("/:id", controller.DeletePlayer)
		protected.POST("/import", controller.ImportRoster)
		protected.GET("/export", controller.ExportRoster)
	}
}
