package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	log, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(&Config{Level: "loud"})
	require.Error(t, err)
}

func TestNewDebugOverridesLevel(t *testing.T) {
	t.Parallel()

	log, err := New(&Config{Level: "error", Debug: true})
	require.NoError(t, err)

	impl, ok := log.(*loggerImpl)
	require.True(t, ok)
	assert.Equal(t, zerolog.DebugLevel, impl.logger.GetLevel())
}

func TestTestLoggerDiscardsOutput(t *testing.T) {
	t.Parallel()

	log := NewTestLogger()
	log.Info().Msg("should go nowhere")
	log.Error().Msg("also nowhere")
}
