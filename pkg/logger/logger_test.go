package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("loud", "chat-server")
	assert.Error(t, err)

	l, err := NewLogger("debug", "chat-server")
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestZapLoggerWritesKeysAndValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewFromZap(zap.New(core)).With("request_id", "abc")

	l.Info("mensagem criada", "id", 3)
	l.Warn("aviso")
	l.Error("falha", "error", "boom")
	l.Debug("detalhe")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "mensagem criada", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["request_id"])
	assert.EqualValues(t, 3, ctx["id"])
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Info("nada")
	assert.NotPanics(t, func() { _ = l.With("k", "v") })
}
