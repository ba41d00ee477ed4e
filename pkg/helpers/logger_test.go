package helpers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionIsJSONWithService(t *testing.T) {
	logger := NewLogger("wallet", "production")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.WithField("user_id", "user-1").Info("transaction recorded")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "wallet", line["service"])
	assert.Equal(t, "transaction recorded", line["message"])
	assert.Equal(t, "user-1", line["user_id"])
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewLogger_DevelopmentIsDebug(t *testing.T) {
	logger := NewLogger("users", "development")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
