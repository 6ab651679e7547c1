package logr

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
	"github.com/urfave/cli/v2"
)

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

type (
	// Logger wraps the upstream logr logger with the format it was built with.
	Logger struct {
		logr.Logger

		Format Format
	}

	Config struct {
		Verbosity int
		Format    string
	}

	Format string
)

// Flags returns the cli flags that populate cfg once the app has parsed its
// arguments.
func Flags(cfg *Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "v",
			Usage:       "Logging verbosity; 1 logs every wait probe",
			EnvVars:     []string{"FLOW_LOG_VERBOSITY"},
			Destination: &cfg.Verbosity,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Logging format: text or json",
			Value:       string(TextFormat),
			EnvVars:     []string{"FLOW_LOG_FORMAT"},
			Destination: &cfg.Format,
		},
	}
}

// New constructs a logger writing to stderr.
func New(cfg *Config) (Logger, error) {
	return NewWithWriter(os.Stderr, cfg)
}

func NewWithWriter(w io.Writer, cfg *Config) (Logger, error) {
	var h slog.Handler
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Verbosity)}

	switch Format(cfg.Format) {
	case TextFormat, "":
		h = slog.NewTextHandler(w, opts)
	case JSONFormat:
		h = slog.NewJSONHandler(w, opts)
	default:
		return Logger{}, fmt.Errorf("unrecognised logging format: %s", cfg.Format)
	}
	return Logger{
		Logger: logr.FromSlogHandler(h),
		Format: Format(cfg.Format),
	}, nil
}

func Discard() Logger { return Logger{Logger: logr.Discard()} }

// WithValues returns a new Logger instance with additional key/value pairs.
func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{
		Logger: l.Logger.WithValues(keysAndValues...),
		Format: l.Format,
	}
}

func (l Logger) V(level int) Logger {
	return Logger{Logger: l.Logger.V(level), Format: l.Format}
}

// toSlogLevel converts a logr v-level to a slog level.
func toSlogLevel(verbosity int) slog.Level {
	if verbosity <= 0 {
		return slog.LevelInfo
	}
	return slog.Level(-4 - (verbosity - 1))
}
