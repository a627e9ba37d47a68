package photo

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu     sync.RWMutex
	photos map[uuid.UUID]Photo
}

// NewMemoryRepository constructs an in-memory blob store for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{photos: make(map[uuid.UUID]Photo)}
}

func (r *memoryRepository) Create(_ context.Context, p Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.photos[p.ID] = p
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id uuid.UUID) (Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.photos[id]
	if !ok {
		return Photo{}, ErrNotFound
	}
	return p, nil
}
