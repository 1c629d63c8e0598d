package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects log sinks. The TUI owns the terminal, so there is no
// stderr sink; with no file and no journal everything is discarded.
type Options struct {
	File    string
	Level   slog.Level
	Journal bool
}

// Logger is a configured slog logger plus whatever it needs to release.
type Logger struct {
	*slog.Logger
	Session string
	closers []io.Closer
}

func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	l.closers = nil
	return first
}

// New builds a logger fanning out to every configured sink. Every record carries
// a per-run session id so interleaved runs in one file can be told apart.
func New(opts Options) (*Logger, error) {
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	var handlers []slog.Handler
	var closers []io.Closer

	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	if opts.Journal {
		jh, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			// Journal is best-effort (not every host runs systemd). Report it
			// through whatever sinks we do have.
			if len(handlers) > 0 {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = handlers[0].Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, jh)
		}
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = slog.NewTextHandler(io.Discard, nil)
	case 1:
		h = handlers[0]
	default:
		h = slogmulti.Fanout(handlers...)
	}

	session := uuid.NewString()
	return &Logger{
		Logger:  slog.New(h).With("session", session),
		Session: session,
		closers: closers,
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := New(Options{})
	return l
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
