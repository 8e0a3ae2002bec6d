package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init("warn", false)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	var buf bytes.Buffer
	l := Logger().Output(&buf)
	l.Error().Msg("boom")
	assert.Contains(t, buf.String(), `"service":"quote-service"`)

	Init("info", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	// Unknown levels fall back to info.
	Init("verbose", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestWithComponent(t *testing.T) {
	Init("info", false)

	var buf bytes.Buffer
	l := WithComponent("engine").Output(&buf)
	l.Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"engine"`)
	assert.Contains(t, buf.String(), `"service":"quote-service"`)
}
