package logging

import (
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, noopLogger{}, logger)
	// No-op logger tolerates everything.
	logger.Debug("ignored")
	logger.Error("ignored", "k", "v")
	assert.NoError(t, logger.Shutdown())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]clog.Level{
		"debug":   clog.DebugLevel,
		"info":    clog.InfoLevel,
		"warn":    clog.WarnLevel,
		"warning": clog.WarnLevel,
		"error":   clog.ErrorLevel,
		"bogus":   clog.InfoLevel,
		"":        clog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestWithAddsFields(t *testing.T) {
	base := &loggerImpl{
		clogger: clog.New(os.Stderr),
		fields:  map[string]any{"a": 1},
	}
	child := base.With("b", 2).(*loggerImpl)
	assert.Equal(t, 1, child.fields["a"])
	assert.Equal(t, 2, child.fields["b"])
	// The parent's fields are unchanged.
	_, ok := base.fields["b"]
	assert.False(t, ok)
}

func TestGetGlobalUninitialized(t *testing.T) {
	assert.IsType(t, noopLogger{}, GetGlobal())
	assert.Equal(t, "", CurrentLogFile())
}

func TestRotateKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"wren-toolbar_20240101_000000_PID1.log",
		"wren-toolbar_20240102_000000_PID1.log",
		"wren-toolbar_20240103_000000_PID1.log",
		"unrelated.txt",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs int
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logs++
		}
	}
	assert.Equal(t, 2, logs)
	// Non-log files are never touched.
	_, err = os.Stat(filepath.Join(dir, "unrelated.txt"))
	assert.NoError(t, err)
}

func TestRotateZeroMaxIsNoop(t *testing.T) {
	assert.NoError(t, rotate(t.TempDir(), 0))
}
