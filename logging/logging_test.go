package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewTo(&buf, false).Named("game")
	log.Debug("hidden")
	log.Info("State change", zap.String("to", "win"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "State change", entry["msg"])
	assert.Equal(t, "game", entry["logger"])
	assert.Equal(t, "win", entry["to"])
}

func TestDevelopmentLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewTo(&buf, true)
	log.Debug("Level loaded", zap.Int("bricks", 3))

	assert.Contains(t, buf.String(), "Logging initialized")
	assert.Contains(t, buf.String(), "Level loaded")
	assert.Contains(t, buf.String(), `"bricks": 3`)
}
