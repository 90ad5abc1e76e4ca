package main

import (
	"bytes"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/cadet/config"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(io.Discard) })
	return &buf
}

func TestApplyRateOverrides_LogsPersistedValues(t *testing.T) {
	buf := captureLog(t)
	cfg := config.New()

	applyRateOverrides(cfg, 500, 90, "/tmp/cadet.yaml")

	assert.Equal(t, config.MaxUpdatesPerSecond, cfg.UpdatesPerSecond())
	assert.Equal(t, 90, cfg.FramesPerSecond())
	out := buf.String()
	assert.Contains(t, out, "-ups override, updates per second 360 will be saved to /tmp/cadet.yaml")
	assert.Contains(t, out, "-fps override, frames per second 90 will be saved to /tmp/cadet.yaml")
}

func TestApplyRateOverrides_ZeroLeavesConfig(t *testing.T) {
	buf := captureLog(t)
	cfg := config.New()

	applyRateOverrides(cfg, 0, 0, "settings.yaml")

	assert.Equal(t, config.DefaultUpdatesPerSecond, cfg.UpdatesPerSecond())
	assert.Equal(t, config.DefaultFramesPerSecond, cfg.FramesPerSecond())
	assert.Empty(t, buf.String())
}
