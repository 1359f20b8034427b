package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the users table if it does not exist. Safe to run on
// every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	const query = `
		CREATE TABLE IF NOT EXISTS users (
			user_id      TEXT PRIMARY KEY,
			context      JSONB NOT NULL DEFAULT '{}'::jsonb,
			last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}
