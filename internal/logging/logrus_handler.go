package logging

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// FromLogrus exposes a logrus logger through [slog], so packages written
// against slog can share the logrus outputs and hooks.
func FromLogrus(log *logrus.Logger) *slog.Logger {
	return slog.New(&logrusHandler{log: log})
}

type logrusHandler struct {
	log    *logrus.Logger
	fields logrus.Fields
	group  string
}

func toLogrusLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

func (h *logrusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.log.IsLevelEnabled(toLogrusLevel(level))
}

func (h *logrusHandler) Handle(ctx context.Context, r slog.Record) error {
	fields := make(logrus.Fields, len(h.fields)+r.NumAttrs())
	for k, v := range h.fields {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(fields, h.group, a)
		return true
	})
	entry := h.log.WithContext(ctx).WithFields(fields)
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(toLogrusLevel(r.Level), r.Message)
	return nil
}

func (h *logrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(logrus.Fields, len(h.fields)+len(attrs))
	for k, v := range h.fields {
		fields[k] = v
	}
	for _, a := range attrs {
		addAttr(fields, h.group, a)
	}
	return &logrusHandler{log: h.log, fields: fields, group: h.group}
}

func (h *logrusHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &logrusHandler{log: h.log, fields: h.fields, group: join(h.group, name)}
}

func addAttr(fields logrus.Fields, group string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if v.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = join(group, a.Key)
		}
		for _, ga := range v.Group() {
			addAttr(fields, prefix, ga)
		}
		return
	}
	fields[join(group, a.Key)] = v.Any()
}

func join(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
