package photo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoOwner indicates an upload without an authenticated owner.
	ErrNoOwner = errors.New("owner id is required")
	// ErrEmptyData indicates an upload carrying no bytes.
	ErrEmptyData = errors.New("no file uploaded")
)

const defaultContentType = "application/octet-stream"

// Service stores and retrieves photo blobs.
type Service struct {
	repo Repository
}

// NewService builds a photo service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upload persists a blob under a freshly generated identifier and returns it.
func (s *Service) Upload(ctx context.Context, ownerID string, data []byte, contentType string) (uuid.UUID, error) {
	if ownerID == "" {
		return uuid.Nil, ErrNoOwner
	}
	if len(data) == 0 {
		return uuid.Nil, ErrEmptyData
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	p := Photo{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Data:        data,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return uuid.Nil, err
	}
	return p.ID, nil
}

// Fetch returns the blob stored under id.
func (s *Service) Fetch(ctx context.Context, id uuid.UUID) (Photo, error) {
	return s.repo.Get(ctx, id)
}
