package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-wallet/config"
	"github.com/oksasatya/go-ddd-wallet/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-wallet/pkg/validation"
)

// NewEngine builds the gin engine with the global middleware both services share.
func NewEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())

	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowCredentials = false
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}
	return r
}
