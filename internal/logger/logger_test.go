package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func useBuffer(level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return &buf
}

func TestInfo(t *testing.T) {
	buf := useBuffer(slog.LevelInfo)

	Info("server started", "port", 8080)

	output := buf.String()
	assert.Contains(t, output, "server started")
	assert.Contains(t, output, "port=8080")
}

func TestError(t *testing.T) {
	buf := useBuffer(slog.LevelInfo)

	Error("query failed", "table", "orders")

	output := buf.String()
	assert.Contains(t, output, "query failed")
	assert.Contains(t, output, "table=orders")
}

func TestDebug(t *testing.T) {
	buf := useBuffer(slog.LevelDebug)

	Debug("cache hit")

	assert.Contains(t, buf.String(), "cache hit")
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := useBuffer(slog.LevelInfo)

	Debug("cache hit")

	assert.Empty(t, buf.String())
}

func TestInfof(t *testing.T) {
	buf := useBuffer(slog.LevelInfo)

	Infof("listening on port %d", 8080)

	assert.Contains(t, buf.String(), "listening on port 8080")
}

func TestErrorf(t *testing.T) {
	buf := useBuffer(slog.LevelInfo)

	Errorf("migration failed: %v", assert.AnError)

	assert.Contains(t, buf.String(), "migration failed")
}

func TestDebugf(t *testing.T) {
	buf := useBuffer(slog.LevelDebug)

	Debugf("popped %d jobs", 3)

	assert.Contains(t, buf.String(), "popped 3 jobs")
}
