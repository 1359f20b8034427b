// Package inmem is the process-local memory backend, used when no durable
// store is configured. State does not survive a restart.
package inmem

import (
	"sync"

	"health-info-bot/internal/memory/repository"
	"health-info-bot/internal/model"
)

type implRepository struct {
	mu    sync.RWMutex
	users map[string]model.UserMemory
}

// New creates a new in-process Repository.
func New() repository.Repository {
	return &implRepository{users: make(map[string]model.UserMemory)}
}
