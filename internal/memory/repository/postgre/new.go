package postgre

import (
	"database/sql"
	"fmt"

	"health-info-bot/internal/memory/repository"
	"health-info-bot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for user memory.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("memory/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("memory/repository/postgre.%s", method)
}
