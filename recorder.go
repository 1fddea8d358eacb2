package simclock

import (
	"context"
	"log/slog"
	"time"
)

// AdvanceRecorder observes AdvanceTo calls: a start event carrying the
// span being traversed and a done event carrying the final instant.
// Recorders must not alter the advance in any way, so the methods return
// nothing; implementations that can fail should do so silently.
type AdvanceRecorder interface {
	RecordAdvanceStart(ctx context.Context, from, to time.Time)
	RecordAdvanceDone(ctx context.Context, now time.Time)
}

type NopAdvanceRecorder struct{}

func (NopAdvanceRecorder) RecordAdvanceStart(_ context.Context, _, _ time.Time) {}

func (NopAdvanceRecorder) RecordAdvanceDone(_ context.Context, _ time.Time) {}

// SlogAdvanceRecorder emits structured log records around each advance.
type SlogAdvanceRecorder struct {
	logger *slog.Logger
}

func (r SlogAdvanceRecorder) RecordAdvanceStart(ctx context.Context, from, to time.Time) {
	r.logger.LogAttrs(ctx, slog.LevelDebug, "advancing simulated clock",
		slog.Time("from", from),
		slog.Time("to", to),
	)
}

func (r SlogAdvanceRecorder) RecordAdvanceDone(ctx context.Context, now time.Time) {
	r.logger.LogAttrs(ctx, slog.LevelDebug, "simulated clock advanced",
		slog.Time("now", now),
	)
}

// NewSlogAdvanceRecorder returns a recorder logging through logger, or
// slog.Default when nil.
func NewSlogAdvanceRecorder(logger *slog.Logger) SlogAdvanceRecorder {
	if logger == nil {
		logger = slog.Default()
	}

	return SlogAdvanceRecorder{logger: logger}
}
