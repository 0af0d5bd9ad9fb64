package logger

import (
	"log/slog"
	"os"
	"time"
)

// NewJSONHandler emits one JSON object per record to stdout with RFC3339
// timestamps, which is what the hosting environment's log collector expects.
func NewJSONHandler(level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}
