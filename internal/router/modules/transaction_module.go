package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/go-ddd-wallet/internal/interface/http"
	"github.com/oksasatya/go-ddd-wallet/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
)

// TransactionModule wires the wallet endpoints. Every route needs a bearer token.
// POST /api/transactions, GET /api/transactions, GET /api/balance
type TransactionModule struct {
	Handler *handlers.TransactionHandler
	JWT     *helpers.JWTManager
	Limiter *middleware.Limiter
	Logger  logrus.FieldLogger
}

func NewTransactionModule(h *handlers.TransactionHandler, jwt *helpers.JWTManager, limiter *middleware.Limiter, logger logrus.FieldLogger) *TransactionModule {
	return &TransactionModule{Handler: h, JWT: jwt, Limiter: limiter, Logger: logger}
}

func (m *TransactionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.JWT, m.Logger))
	auth.Use(m.Limiter.Handler(middleware.Rule{Max: 120, Window: time.Minute, Key: middleware.KeyByUserID()}))
	{
		// writes get a tighter budget, counted per client and route
		writeLimiter := m.Limiter.Handler(middleware.Rule{Max: 30, Window: time.Minute, Key: middleware.KeyByIPAndPath()})
		auth.POST("/transactions", writeLimiter, m.Handler.CreateTransaction)
		auth.GET("/transactions", m.Handler.ListTransactions)
		auth.GET("/balance", m.Handler.GetBalance)
	}
}
