package inmem

import (
	"context"

	"health-info-bot/internal/model"
)

// GetMemory returns a copy of the stored memory; unknown users get the
// zero memory without error.
func (r *implRepository) GetMemory(_ context.Context, userID string) (model.UserMemory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memory := r.users[userID]
	memory.LastQueries = append([]model.QueryRecord(nil), memory.LastQueries...)
	return memory, nil
}

// SaveMemory stores a copy of the memory for the user.
func (r *implRepository) SaveMemory(_ context.Context, userID string, memory model.UserMemory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	memory.LastQueries = append([]model.QueryRecord(nil), memory.LastQueries...)
	r.users[userID] = memory
	return nil
}
