package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", Encoding: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	l, err := New(Config{Level: "debug", OutputPath: out})
	require.NoError(t, err)

	l.Debug("hello", zap.String("k", "v"))
	_ = l.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"DEBUG"`)
	assert.Contains(t, string(data), `"k":"v"`)
	assert.Contains(t, string(data), `"timestamp"`)
}
