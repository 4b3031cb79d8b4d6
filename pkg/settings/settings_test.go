package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCliParams(t *testing.T) {
	run := NewCliParams()
	require.NotNil(t, run)
	assert.Equal(t, int8(0), run.MinLogLevel)
	assert.Equal(t, LogFormatJSON, run.LogFormat)
	assert.Equal(t, "table", run.Output)
	assert.False(t, run.NoColor)
	assert.False(t, run.IsQuiet)
}

func TestContextRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{name: "empty_settings", settings: &Run{}},
		{name: "settings_with_values", settings: &Run{NoColor: true, KeyMode: "vim", Output: "yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := IntoContext(context.Background(), tt.settings)
			got, ok := FromContext(ctx)
			require.True(t, ok)
			assert.Same(t, tt.settings, got)
			assert.Same(t, tt.settings, FromContextOrDefault(ctx))
		})
	}
}

func TestFromContextMissing(t *testing.T) {
	got, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)

	def := FromContextOrDefault(context.Background())
	require.NotNil(t, def)
	assert.Equal(t, LogFormatJSON, def.LogFormat)
}
