package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/go-ddd-wallet/internal/interface/http"
	"github.com/oksasatya/go-ddd-wallet/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
)

// UserModule wires the user endpoints.
// Public: POST /api/users
// Protected: GET /api/users, GET /api/users/search, GET|PUT|DELETE /api/users/me,
// PUT /api/users/me/password, GET /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
	Limiter *middleware.Limiter
	Logger  logrus.FieldLogger
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, limiter *middleware.Limiter, logger logrus.FieldLogger) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, Limiter: limiter, Logger: logger}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := m.Limiter.Handler(middleware.Rule{Max: 10, Window: time.Minute, Key: middleware.KeyByIP()})
	rg.POST("/users", registerLimiter, m.Handler.Create)

	auth := rg.Group("/users")
	auth.Use(middleware.JWTAuth(m.JWT, m.Logger))
	auth.Use(
		m.Limiter.Handler(middleware.Rule{Max: 300, Window: time.Minute, Key: middleware.KeyByIP()}),
		m.Limiter.Handler(middleware.Rule{Max: 120, Window: time.Minute, Key: middleware.KeyByUserID()}),
	)
	{
		auth.GET("", m.Handler.GetAll)
		auth.GET("/search", m.Handler.Search)
		auth.GET("/me", m.Handler.GetMe)
		auth.PUT("/me", m.Handler.UpdateMe)
		auth.DELETE("/me", m.Handler.DeleteMe)
		auth.PUT("/me/password", m.Handler.ChangePassword)
		auth.GET("/:id", m.Handler.GetByID)
	}
}
