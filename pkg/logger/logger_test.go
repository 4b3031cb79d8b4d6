package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oakwood-commons/navtree/pkg/settings"
)

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	lgr, zl := Build(Options{Level: 0, Format: settings.LogFormatJSON, Output: zapcore.AddSync(&buf)})
	require.NotNil(t, zl)

	lgr.Info("focus committed", "path", []string{"a", "b"})
	lgr.V(1).Info("hidden at info level")
	require.NoError(t, zl.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "focus committed", entry[MessageKey])
	assert.Contains(t, entry, TimeStampKey)
	assert.Contains(t, entry, VersionKey)
	assert.Equal(t, []any{"a", "b"}, entry["path"])
}

func TestBuildConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	lgr, zl := Build(Options{Level: -1, Format: settings.LogFormatConsole, Output: zapcore.AddSync(&buf)})

	lgr.V(1).Info("resolver decision", "node", "a")
	require.NoError(t, zl.Sync())

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "resolver decision")
}

func TestGetReturnsSameInstance(t *testing.T) {
	l1 := Get(Options{})
	l2 := Get(Options{Level: -1})
	require.NotNil(t, l1)
	assert.Same(t, l1, l2)
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	Get(Options{})
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	got := Get(Options{})
	require.NotNil(t, got)
	assert.Equal(t, "*logr.Logger", fmt.Sprintf("%T", got))
	assert.Same(t, &defaultNoopLogger, got)
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	lgr := Get(Options{})

	withLogger := WithLogger(ctx, lgr)
	assert.Same(t, lgr, FromContext(withLogger))
	assert.Equal(t, withLogger, WithLogger(withLogger, lgr), "same logger keeps the context")

	other := logr.Discard()
	replaced := WithLogger(withLogger, &other)
	assert.Same(t, &other, FromContext(replaced))
}

func TestFromContextFallbacks(t *testing.T) {
	global := Get(Options{})
	assert.Same(t, global, FromContext(context.Background()))

	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
}

func TestSyncWithoutLogger(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(fmt.Errorf("sync /dev/stderr: %w", syscall.EINVAL)))
	assert.True(t, isIgnorableSyncError(errors.New("The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}

func TestWithValues(t *testing.T) {
	lgr := Get(Options{})
	nl := WithValues(lgr, "key", "value")
	require.NotNil(t, nl)
	assert.NotSame(t, lgr, nl)

	assert.NotNil(t, GetNoopLogger())
	assert.NotPanics(t, func() { GetNoopLogger().Info("nothing") })
}
