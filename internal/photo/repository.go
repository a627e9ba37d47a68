package photo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no photo exists under the requested identifier.
var ErrNotFound = errors.New("photo not found")

// Repository persists photo blobs.
type Repository interface {
	Create(ctx context.Context, p Photo) error
	Get(ctx context.Context, id uuid.UUID) (Photo, error)
}

// PostgresRepository stores photos in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a photo blob.
func (r *PostgresRepository) Create(ctx context.Context, p Photo) error {
	_, err := r.db.Exec(ctx, `INSERT INTO photos (id, owner_id, data, content_type, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.OwnerID, p.Data, p.ContentType, p.CreatedAt.UTC())
	return err
}

// Get fetches a photo by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (Photo, error) {
	row := r.db.QueryRow(ctx, `SELECT id, owner_id, data, content_type, created_at
        FROM photos WHERE id = $1`, id)

	var p Photo
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Data, &p.ContentType, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Photo{}, ErrNotFound
		}
		return Photo{}, err
	}
	p.CreatedAt = createdAt.UTC()
	return p, nil
}
