// Package logging provides the leveled slog logger shared by the GUI and the
// headless CLI, plus an observer that logs a summary line per round.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"galapagos/internal/biotope"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
)

// LevelTrace is a custom slog level below Debug. The engine logs every single
// interaction at this level.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Label the custom trace level
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewConsoleLogger creates a leveled slog.Logger backed by a charm console
// handler, colored when w is a terminal.
func NewConsoleLogger(level string, w io.Writer) *slog.Logger {
	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(ParseLevel(level)),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
	styles := charmlog.DefaultStyles()
	styles.Levels[charmlog.Level(LevelTrace)] = lipgloss.NewStyle().
		SetString("TRACE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("244"))
	h.SetStyles(styles)
	return slog.New(h)
}

// New picks the handler by format: "console" for the charm handler, anything
// else for the plain text handler.
func New(format, level string, w io.Writer) *slog.Logger {
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		return NewConsoleLogger(level, w)
	}
	return NewLogger(level, w)
}

// RoundObserver returns a biotope observer that logs one Info line per
// notification with the population of every kind.
func RoundObserver(logger *slog.Logger) biotope.Observer {
	return func(v *biotope.View) {
		stats := v.Stats()
		attrs := []any{
			"round", v.Round(),
			"population", stats.Population(),
			"born", stats.Born(),
			"died", stats.Deaths(),
		}
		for _, name := range stats.Names() {
			attrs = append(attrs, name, stats.Kinds[name].Population)
		}
		logger.Info("population", attrs...)
	}
}
