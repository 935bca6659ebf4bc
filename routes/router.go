package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/bccpune/crickclub/config"
	"github.com/bccpune/crickclub/internal/auth"
	"github.com/bccpune/crickclub/internal/fees"
	"github.com/bccpune/crickclub/internal/live"
	"github.com/bccpune/crickclub/internal/match"
	"github.com/bccpune/crickclub/internal/player"
)

// SetupRoutes wires every feature group onto a single gin engine. The
// websocket hub and clock are shared so live scoring, scheduling and
// finance all agree on time and broadcast fan-out.
func SetupRoutes(db *gorm.DB, cfg *config.Config, hub *live.Hub, clock clockwork.Clock) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "crickclub",
			"docs":    "/swagger/index.html",
			"healthy": true,
		})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg, clock)
	player.RegisterPlayerRoutes(api, db, cfg, clock)
	match.RegisterMatchRoutes(api, db, cfg, hub, clock)
	fees.RegisterFeesRoutes(api, db, cfg, clock)

	return r
}
