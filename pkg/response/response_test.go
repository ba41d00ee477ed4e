package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestSuccess_WritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(RequestIDKey, "req-1")

	Success(c, http.StatusCreated, map[string]string{"id": "x"}, "created", nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, map[string]any{"id": "x"}, body["data"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "meta")
}

func TestError_AbortsAndDefaultsTo400(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	resp := Error(c, 0, "bad", gin.H{"code": "VALIDATION_ERROR"})

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, c.IsAborted())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, map[string]any{"code": "VALIDATION_ERROR"}, body["error"])
	assert.NotContains(t, body, "data")
}

func TestSuccess_EmptyListStaysArray(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusOK, []string{}, "ok", nil)

	assert.Contains(t, w.Body.String(), `"data":[]`)
}
