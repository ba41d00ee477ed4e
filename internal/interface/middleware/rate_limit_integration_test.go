//go:build integration

package middleware

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/oksasatya/go-ddd-wallet/internal/testutil"
)

func TestRateLimit_Redis(t *testing.T) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() { _ = rdb.Close() })

	l := NewLimiter(rdb, "wallet", testutil.MakeNoopLogger())
	r := newEngine(RealIP(), l.Handler(Rule{Max: 2, Window: time.Minute, Key: KeyByIP(), Allow: AllowPrivateIP()}))

	w, _ := probe(t, r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w, _ = probe(t, r, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := probe(t, r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", body["error"].(map[string]any)["code"])

	// private addresses bypass the limit
	w, _ = probe(t, r, map[string]string{"X-Forwarded-For": "10.0.0.5"})
	assert.Equal(t, http.StatusOK, w.Code)

	keys, err := rdb.Keys(ctx, "rl:wallet:*").Result()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
