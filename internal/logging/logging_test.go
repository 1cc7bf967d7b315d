package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	charm := Setup("test", false)
	assert.Equal(t, log.InfoLevel, charm.GetLevel())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	charm = Setup("test", true)
	assert.Equal(t, log.DebugLevel, charm.GetLevel())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
