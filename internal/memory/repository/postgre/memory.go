package postgre

import (
	"context"
	"database/sql"
	"encoding/json"

	"health-info-bot/internal/memory/repository"
	"health-info-bot/internal/model"
)

// GetMemory loads the memory blob for a user.
// Returns zero-value memory when the user has no row — do NOT return error
// for not-found.
func (r *implRepository) GetMemory(ctx context.Context, userID string) (model.UserMemory, error) {
	const query = `SELECT context FROM users WHERE user_id = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return model.UserMemory{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMemory"), err)
		return model.UserMemory{}, repository.ErrFailedToGet
	}

	var memory model.UserMemory
	if err := json.Unmarshal(raw, &memory); err != nil {
		r.l.Errorf(ctx, "%s: corrupt context blob: %v", r.dsn("GetMemory"), err)
		return model.UserMemory{}, repository.ErrFailedToGet
	}
	return memory, nil
}

// SaveMemory upserts the memory blob, refreshing last_updated server-side.
func (r *implRepository) SaveMemory(ctx context.Context, userID string, memory model.UserMemory) error {
	const query = `
		INSERT INTO users (user_id, context, last_updated)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET context = EXCLUDED.context, last_updated = NOW()`

	raw, err := json.Marshal(memory)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal: %v", r.dsn("SaveMemory"), err)
		return repository.ErrFailedToSave
	}

	if _, err := r.db.ExecContext(ctx, query, userID, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveMemory"), err)
		return repository.ErrFailedToSave
	}
	return nil
}
