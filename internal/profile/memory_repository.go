package profile

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewMemoryRepository builds an in-memory profile store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{profiles: make(map[string]Profile)}
}

func (r *memoryRepository) Create(_ context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[p.UserID]; exists {
		return ErrAlreadyExists
	}
	r.profiles[p.UserID] = p
	return nil
}

func (r *memoryRepository) Get(_ context.Context, userID string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *memoryRepository) Update(_ context.Context, userID string, input UpdateInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return ErrNotFound
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Email != nil {
		p.Email = *input.Email
	}
	if input.School != nil {
		p.School = *input.School
	}
	if input.NetID != nil {
		p.NetID = *input.NetID
	}
	if input.PhotoID != nil {
		p.PhotoID = input.PhotoID
	}
	p.UpdatedAt = time.Now().UTC()
	r.profiles[userID] = p
	return nil
}
