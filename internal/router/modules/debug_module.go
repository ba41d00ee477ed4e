package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-wallet/internal/interface/middleware"
)

// DebugModule exposes expvar at /api/debug/vars.
type DebugModule struct {
	Limiter *middleware.Limiter
}

func NewDebugModule(limiter *middleware.Limiter) *DebugModule {
	return &DebugModule{Limiter: limiter}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// internal scrapers are exempt
	rl := m.Limiter.Handler(middleware.Rule{
		Max:    120,
		Window: time.Minute,
		Key:    middleware.KeyByIP(),
		Allow:  middleware.AllowPrivateIP(),
	})
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
