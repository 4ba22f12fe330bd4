package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hezhis/dispatch/internal/config"
	"github.com/rs/zerolog"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// New builds a console logger for app. The profile sets the baseline and
// cfg overrides it where set.
func New(app string, profile Profile, cfg config.LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	level, timestamp := defaults(profile)
	if lvl, ok := ParseLevel(cfg.Level); ok {
		level = lvl
	}
	if profile == ProfileRuntime {
		timestamp = cfg.Timestamp
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(output).Level(level).With().Str("app", app)
	if timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func defaults(profile Profile) (zerolog.Level, bool) {
	switch profile {
	case ProfileTest:
		return zerolog.DebugLevel, false
	default:
		return zerolog.InfoLevel, true
	}
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
