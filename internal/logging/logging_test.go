package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetWriterCapturesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	t.Cleanup(Close)

	Debug("unhandled key", "key", "Delete")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="unhandled key"`)
	assert.Contains(t, out, "key=Delete")
}

func TestSetFileOutputCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bootmenu.log")
	require.NoError(t, SetFileOutput(path))

	Info("menu created")
	Close()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "menu created")
}

func TestDefaultLoggerDiscards(t *testing.T) {
	require.NoError(t, SetFileOutput(""))
	assert.NotPanics(t, func() {
		Warn("nobody listens")
		Error("still nobody")
	})
}
