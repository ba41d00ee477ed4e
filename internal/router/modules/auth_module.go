package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-wallet/internal/interface/http"
	"github.com/oksasatya/go-ddd-wallet/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Limiter *middleware.Limiter
}

func NewAuthModule(h *handlers.AuthHandler, limiter *middleware.Limiter) *AuthModule {
	return &AuthModule{Handler: h, Limiter: limiter}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// 10 req/min per IP on the login route
	loginLimiter := m.Limiter.Handler(middleware.Rule{Max: 10, Window: time.Minute, Key: middleware.KeyByIPAndPath()})
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
