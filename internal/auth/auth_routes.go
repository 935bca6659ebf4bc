package auth

import (
	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/middleware"
	"github.com/bccpune/crickclub/internal/player"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config, clock clockwork.Clock) {
	players := player.NewPlayerRepository(db)
	controller := NewAuthController(players, cfg, clock)

	public := router.Group("/auth")
	{
		public.POST("/register", controller.Register)
		public.POST("/login", controller.Login)
	}

	protected := router.Group("/auth")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))
	{
		protected.GET("/me", controller.GetProfile)
	}
}
