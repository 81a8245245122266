package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	l, err := Init(Options{})
	require.NoError(t, err)
	require.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestInit_JSONWriter(t *testing.T) {
	var out bytes.Buffer
	l, err := Init(Options{Enabled: true, Writer: &out, Format: "json", Level: slog.LevelDebug})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Init(Options{}) })

	l.Debug("corrected", "bitPosition", 16)
	require.Contains(t, out.String(), `"msg":"corrected"`)
	require.Contains(t, out.String(), `"bitPosition":16`)
	require.Same(t, l, L)
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eccctl.log")
	l, err := Init(Options{Enabled: true, Path: path})
	require.NoError(t, err)

	l.Info("allocated", "offset", 0)
	l.Debug("hidden")
	require.NoError(t, Close())
	require.NoError(t, Close())
	t.Cleanup(func() { _, _ = Init(Options{}) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "msg=allocated"))
	require.False(t, strings.Contains(string(data), "hidden"), "debug is below the default level")
}

func TestInit_UnknownFormat(t *testing.T) {
	_, err := Init(Options{Enabled: true, Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}
