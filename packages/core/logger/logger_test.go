package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelForVerbosity(0))
	assert.Equal(t, zerolog.InfoLevel, LevelForVerbosity(1))
	assert.Equal(t, zerolog.DebugLevel, LevelForVerbosity(2))
	assert.Equal(t, zerolog.TraceLevel, LevelForVerbosity(5))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, 1, true)

	log.Debug().Msg("hidden")
	log.Info().Str("path", "request.json").Msg("loaded request")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded request")
	assert.Contains(t, out, "path=request.json")
}
