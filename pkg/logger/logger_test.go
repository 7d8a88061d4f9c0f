package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "warn")

	log.Info("hidden %d", 1)
	log.Warn("visible %s", "warn")
	log.Error("visible %s", "error")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "visible warn")
	assert.Contains(t, out, "visible error")
}

func TestLogger_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "nonsense")

	log.Debug("debug line")
	log.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}
