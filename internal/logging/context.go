package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithRunID tags every event of this process run with a random run_id.
// The generated id is returned so callers can print it.
func WithRunID(ctx context.Context) (context.Context, string) {
	runID := uuid.NewString()
	logger := FromContext(ctx)
	childLogger := logger.With().Str("run_id", runID).Logger()
	return WithContext(ctx, childLogger), runID
}
