// Package context carries request/operation-scoped values across layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyOperationID is the key for storing the operation ID in context.
	KeyOperationID ContextKey = "operation_id"

	// KeyLogger is the key for storing an operation-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// NewOperationID returns a fresh operation identifier.
func NewOperationID() string {
	return uuid.New().String()
}

// GetOperationID extracts the operation ID from context.Context.
// If not found, returns empty string.
func GetOperationID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyOperationID).(string); ok {
		return id
	}

	return ""
}

// WithOperationID returns a new context with the operation ID.
func WithOperationID(ctx context.Context, operationID string) context.Context {
	return context.WithValue(ctx, KeyOperationID, operationID)
}

// GetLogger extracts the operation-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the operation-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
