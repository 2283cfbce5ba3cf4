package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/celer-network/cosmos-sidecar/logger"
	"github.com/stretchr/testify/assert"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	zl, err := logger.New("debug")
	require.NoError(t, err)
	assert.NotNil(t, zl)

	_, err = logger.New("loud")
	require.Error(t, err)
}

func TestZapLogger_Trace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	zl := logger.NewZapLogger(zap.New(core).Sugar())

	zl.Tracew("resolved", "hash", "ab")
	zl.Tracef("block %d", 7)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "TRACE: resolved", entries[0].Message)
	assert.Equal(t, "ab", entries[0].ContextMap()["hash"])
	assert.Equal(t, "TRACE: block 7", entries[1].Message)
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := logger.NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	zl.Infow("Resolved transaction result", "hash", "ab", "code", 5)
	zl.Tracew("dropped")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Resolved transaction result", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ab", entry["hash"])
	assert.Equal(t, float64(5), entry["code"])
	assert.Equal(t, "cosmos-sidecar", entry["component"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	zl, err := logger.NewConsole(&buf, "warn")
	require.NoError(t, err)

	zl.Infof("hidden %d", 1)
	zl.Warnf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")

	_, err = logger.NewConsole(&buf, "loud")
	require.Error(t, err)
}
