package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"stelwing-booking/internal/pkg/config"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the service logger. Timestamps are rendered in the configured zone.
func New(cfg config.LogConfig, format Format) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg, format)
}

func NewWithWriter(w io.Writer, cfg config.LogConfig, format Format) *slog.Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("service", "stelwing-booking")
}
