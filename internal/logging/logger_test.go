package logging

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachesLoggerToContext(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, Config{
		Writer:    &buf,
		ProjectID: "/project",
		Level:     zerolog.DebugLevel,
	})
	require.NoError(t, err)

	Get(ctx).Debug().Str("component", "test").Msg("hello")

	output := buf.String()
	assert.Contains(t, output, `"project_id":"/project"`)
	assert.Contains(t, output, `"message":"hello"`)
}

func TestNewRequiresFilesystemForFileLogging(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), nil, Config{ProjectID: "/project"})
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, Config{
		Writer: &buf,
		Level:  zerolog.WarnLevel,
	})
	require.NoError(t, err)

	Get(ctx).Info().Msg("filtered out")
	Get(ctx).Warn().Msg("kept")

	assert.NotContains(t, buf.String(), "filtered out")
	assert.Contains(t, buf.String(), "kept")
}

func TestGetWithoutLoggerReturnsDisabled(t *testing.T) {
	t.Parallel()

	logger := Get(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"nonsense", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), "level %q", tt.input)
	}
}
