package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-wallet/config"
)

func esNode(t *testing.T, status int, hits *atomic.Int32) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestNewESClient_PingsCluster(t *testing.T) {
	var hits atomic.Int32
	addr := esNode(t, http.StatusOK, &hits)

	es, err := NewESClient(context.Background(), config.Search{Addrs: addr})
	require.NoError(t, err)
	assert.NotNil(t, es)
	assert.Equal(t, int32(1), hits.Load())
}

func TestNewESClient_UnhealthyClusterIsAnError(t *testing.T) {
	var hits atomic.Int32
	addr := esNode(t, http.StatusServiceUnavailable, &hits)

	_, err := NewESClient(context.Background(), config.Search{Addrs: addr})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Greater(t, hits.Load(), int32(1), "503 is retried")
}
