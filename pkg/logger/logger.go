package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
)

// PrettyHandler renders level-colored, human-readable records for local runs.
// JSON handlers stay the default for dev/prod.
type PrettyHandler struct {
	slog.Handler
	l *log.Logger
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = "\033[35m" + level + "\033[0m"
	case slog.LevelInfo:
		level = "\033[36m" + level + "\033[0m"
	case slog.LevelWarn:
		level = "\033[33m" + level + "\033[0m"
	case slog.LevelError:
		level = "\033[31m" + level + "\033[0m"
	}

	fields := make(map[string]any, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})

	var suffix string
	if len(fields) > 0 {
		b, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
		suffix = string(b)
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	h.l.Println(timeStr, level, r.Message, suffix)

	return nil
}

func newPrettyHandler(out io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelDebug}
	}
	return &PrettyHandler{
		Handler: slog.NewJSONHandler(out, opts),
		l:       log.New(out, "", 0),
	}
}

func SetupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func Err(err error) slog.Attr {
	return slog.String("error", fmt.Sprintf("%v", err))
}
