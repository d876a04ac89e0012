package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestSetupWriter_Levels(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	ctx := context.Background()

	SetupWriter(&bytes.Buffer{}, "warn")
	handler := slog.Default().Handler()
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo), "INFO should not be enabled at warn")
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn), "WARN should be enabled at warn")

	SetupWriter(&bytes.Buffer{}, "debug")
	handler = slog.Default().Handler()
	assert.True(t, handler.Enabled(ctx, slog.LevelDebug), "DEBUG should be enabled at debug")
}

func TestSetupWriter_Output(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	SetupWriter(&buf, "info")
	slog.Info("paraphrase served", "outputs", 3)

	assert.Contains(t, buf.String(), "paraphrase served")
	assert.Contains(t, buf.String(), "outputs=3")
}
