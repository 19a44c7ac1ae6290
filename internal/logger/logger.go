package logger

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultPath is the log file path, relative to the working directory.
const DefaultPath = "logs/demo.txt"

// Logger keeps log lines in memory (the debug overlay shows the latest ones) and appends
// them to a file on disk. Slog returns a structured logger that writes through it.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	echo  io.Writer
	slog  *slog.Logger
}

// New returns a Logger appending to path (DefaultPath if empty) and ensures its directory
// exists. Lines are also copied to echo when it is not nil (e.g. os.Stderr).
func New(path string, echo io.Writer) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	l := &Logger{lines: make([]string, 0), path: path, echo: echo}
	l.slog = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l
}

// Slog returns the structured logger backed by l.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Write implements io.Writer for the slog handler. Each newline-terminated record
// becomes one line.
func (l *Logger) Write(p []byte) (int, error) {
	for _, rec := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		if len(rec) > 0 {
			l.append(string(rec))
		}
	}
	return len(p), nil
}

func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if l.echo != nil {
		_, _ = io.WriteString(l.echo, line+"\n")
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(line + "\n")
	_ = f.Close()
}

// Tail returns a copy of the last n stored lines.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.lines) {
		n = len(l.lines)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}
