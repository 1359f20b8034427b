package repository

import (
	"context"

	"health-info-bot/internal/model"
)

// Repository persists per-user conversational memory. Implementations are
// selected once at startup: Postgres when a database is configured,
// otherwise a process-local map.
type Repository interface {
	// GetMemory returns the stored memory for a user. A user never seen
	// before yields the zero memory without error.
	GetMemory(ctx context.Context, userID string) (model.UserMemory, error)

	// SaveMemory upserts the memory for a user, refreshing the
	// server-side last-updated timestamp.
	SaveMemory(ctx context.Context, userID string, memory model.UserMemory) error
}
