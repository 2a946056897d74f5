package logging

import (
	"context"
	"log/slog"
)

// Fanout forwards each record to every wrapped handler, so a single
// slog call lands both on stdout and in the system_logs buffer. Targets
// that decline the level are skipped. Handle keeps going past a failing
// target and reports the first error.
type Fanout struct {
	targets []slog.Handler
}

func NewFanout(targets ...slog.Handler) *Fanout {
	return &Fanout{targets: targets}
}

func (f *Fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, target := range f.targets {
		if target.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *Fanout) Handle(ctx context.Context, record slog.Record) error {
	var first error
	for _, target := range f.targets {
		if !target.Enabled(ctx, record.Level) {
			continue
		}
		// Each target gets its own copy; records are not reusable.
		if err := target.Handle(ctx, record.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f *Fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Handler, len(f.targets))
	for i, target := range f.targets {
		wrapped[i] = target.WithAttrs(attrs)
	}
	return &Fanout{targets: wrapped}
}

func (f *Fanout) WithGroup(name string) slog.Handler {
	wrapped := make([]slog.Handler, len(f.targets))
	for i, target := range f.targets {
		wrapped[i] = target.WithGroup(name)
	}
	return &Fanout{targets: wrapped}
}
