package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewConsole logs in colour while developing and as JSON otherwise.
func NewConsole(w io.Writer, development bool) *slog.Logger {
	if development {
		return slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug, TimeFormat: time.Kitchen}),
		)
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

type FileOptions struct {
	Path        string
	Development bool
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
}

// NewFile returns a logger that writes only to a rotating file, for programs
// that own the terminal.
func NewFile(opts FileOptions) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if opts.Development {
		level = logrus.DebugLevel
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.Path,
		MaxSize:    cmpOr(opts.MaxSizeMB, 10),
		MaxBackups: cmpOr(opts.MaxBackups, 3),
		MaxAge:     cmpOr(opts.MaxAgeDays, 28),
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return log, nil
}

func cmpOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
