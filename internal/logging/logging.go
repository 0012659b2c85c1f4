// Package logging is the process-wide structured debug log. Output is
// discarded until SetFileOutput is called so that log lines never land on a
// terminal the menu is drawing to.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

type Logger struct {
	logger *slog.Logger
	file   *os.File
}

var (
	mu     sync.Mutex
	global = discard()
)

func discard() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// SetFileOutput sends debug output to the given file, creating parent
// directories as needed. An empty path restores the discarding logger.
func SetFileOutput(path string) error {
	if path == "" {
		swap(discard())
		return nil
	}
	l, err := NewLogger(path)
	if err != nil {
		return err
	}
	swap(l)
	return nil
}

// SetWriter is used by tests to capture log output.
func SetWriter(w io.Writer) {
	swap(&Logger{logger: slog.New(newHandler(w))})
}

func NewLogger(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{logger: slog.New(newHandler(f)), file: f}, nil
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format("2006/01/02 15:04:05.000000"))
			}
			return a
		},
	})
}

func swap(l *Logger) {
	mu.Lock()
	prev := global
	global = l
	mu.Unlock()
	if prev != nil && prev.file != nil {
		_ = prev.file.Close()
	}
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return global.logger
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }

func Info(msg string, args ...any) { current().Info(msg, args...) }

func Warn(msg string, args ...any) { current().Warn(msg, args...) }

func Error(msg string, args ...any) { current().Error(msg, args...) }

// Close flushes and closes the log file, if any.
func Close() {
	swap(discard())
}
