package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
	"github.com/oksasatya/go-ddd-wallet/pkg/response"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthModule serves GET /healthz outside the /api prefix.
type HealthModule struct {
	DB Pinger
}

func NewHealthModule(db Pinger) *HealthModule {
	return &HealthModule{DB: db}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.check)
}

func (m *HealthModule) check(c *gin.Context) {
	if m.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := m.DB.Ping(ctx); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "Database unavailable", gin.H{"code": apperror.CodeInternal})
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "OK", nil)
}
