package match

import (
	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/live"
	"github.com/bccpune/crickclub/internal/middleware"
	"github.com/bccpune/crickclub/internal/player"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config, hub *live.Hub, clock clockwork.Clock) {
	repo := NewMatchRepository(db)
	players := player.NewPlayerRepository(db)
	matches := NewMatchController(repo, players, cfg, clock)
	scoring := NewLiveController(repo, hub, cfg, clock)

	public := router.Group("/matches")
	{
		public.GET("", matches.GetMatches)
		public.GET("/recent", matches.GetRecentCompleted)
		public.GET("/:id", matches.GetMatch)
		public.GET("/:id/scoreboard", scoring.GetScoreboard)
		public.GET("/:id/live/ws", scoring.WatchLive)
	}

	protected := router.Group("/matches")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))
	{
		protected.POST("", matches.CreateMatch)
		protected.PUT("/:id", matches.UpdateMatch)
		protected.DELETE("/:id", matches.CancelMatch)

		liveGroup := protected.Group("/:id/live")
		liveGroup.POST("/start", scoring.StartLive)
		liveGroup.POST("/toss", scoring.Toss)
		liveGroup.POST("/decision", scoring.Decide)
		liveGroup.POST("/openers", scoring.SetOpeners)
		liveGroup.POST("/ball", scoring.PlayBall)
		liveGroup.POST("/undo", scoring.Undo)
		liveGroup.POST("/batsman", scoring.SelectBatsman)
		liveGroup.POST("/bowler", scoring.SelectBowler)
		liveGroup.POST("/second-innings", scoring.BeginSecondInnings)
		liveGroup.POST("/tie-breaker", scoring.ChooseTieBreaker)
		liveGroup.POST("/declare-tie", scoring.DeclareTie)
		liveGroup.POST("/bowl-out/bowlers", scoring.NominateBowlOutBowlers)
		liveGroup.POST("/bowl-out/attempt", scoring.RecordBowlOutAttempt)
	}
}
