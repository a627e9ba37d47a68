package photo

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUploadFetchRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	id, err := svc.Upload(ctx, "uid-1", data, "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	p, err := svc.Fetch(ctx, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !bytes.Equal(p.Data, data) {
		t.Fatalf("expected byte-identical payload")
	}
	if p.ContentType != "image/png" {
		t.Fatalf("expected image/png, got %s", p.ContentType)
	}
}

func TestUploadRejectsEmpty(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Upload(ctx, "uid-1", nil, "image/png"); !errors.Is(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
	if _, err := svc.Upload(ctx, "", []byte("x"), "image/png"); !errors.Is(err, ErrNoOwner) {
		t.Fatalf("expected ErrNoOwner, got %v", err)
	}
}

func TestFetchUnknownID(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	if _, err := svc.Fetch(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
