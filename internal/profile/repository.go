package profile

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates no profile exists for the requested user id.
	ErrNotFound = errors.New("profile not found")
	// ErrAlreadyExists indicates an insert collided with an existing profile.
	ErrAlreadyExists = errors.New("profile already exists")
)

// Repository persists profiles keyed by external user id.
type Repository interface {
	Create(ctx context.Context, p Profile) error
	Get(ctx context.Context, userID string) (Profile, error)
	Update(ctx context.Context, userID string, input UpdateInput) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed profile repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new profile row.
func (r *PostgresRepository) Create(ctx context.Context, p Profile) error {
	_, err := r.db.Exec(ctx, `INSERT INTO profiles (user_id, name, email, school, net_id, photo_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.UserID, p.Name, p.Email, p.School, p.NetID, p.PhotoID, p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return err
}

// Get fetches a profile by external user id.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, name, email, school, net_id, photo_id, created_at, updated_at
        FROM profiles WHERE user_id = $1`, userID)

	var p Profile
	var createdAt, updatedAt time.Time
	if err := row.Scan(&p.UserID, &p.Name, &p.Email, &p.School, &p.NetID, &p.PhotoID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}

// Update applies a partial update; absent fields keep their stored values.
func (r *PostgresRepository) Update(ctx context.Context, userID string, input UpdateInput) error {
	cmd, err := r.db.Exec(ctx, `UPDATE profiles SET
            name = COALESCE($2, name),
            email = COALESCE($3, email),
            school = COALESCE($4, school),
            net_id = COALESCE($5, net_id),
            photo_id = COALESCE($6, photo_id),
            updated_at = now()
        WHERE user_id = $1`,
		userID, input.Name, input.Email, input.School, input.NetID, input.PhotoID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
