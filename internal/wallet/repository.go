package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates no wallet exists for the requested owner.
	ErrNotFound = errors.New("wallet not found")
	// ErrOwnerExists indicates the owner already holds a wallet; the unique
	// index on owner_id backstops concurrent provisioning.
	ErrOwnerExists = errors.New("wallet exists for owner")
)

// Repository persists wallet records.
type Repository interface {
	Create(ctx context.Context, w Wallet) error
	GetByOwner(ctx context.Context, ownerID string) (Wallet, error)
}

// PostgresRepository stores wallets in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a wallet record.
func (r *PostgresRepository) Create(ctx context.Context, w Wallet) error {
	walletID, err := uuid.Parse(w.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO wallets (id, owner_id, public_key, private_key, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		walletID, w.OwnerID, w.PublicKey, w.PrivateKey, w.CreatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrOwnerExists
	}
	return err
}

// GetByOwner fetches the wallet provisioned for the given owner.
func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (Wallet, error) {
	row := r.db.QueryRow(ctx, `SELECT id, owner_id, public_key, private_key, created_at
        FROM wallets WHERE owner_id = $1`, ownerID)

	var w Wallet
	var id uuid.UUID
	var createdAt time.Time
	if err := row.Scan(&id, &w.OwnerID, &w.PublicKey, &w.PrivateKey, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Wallet{}, ErrNotFound
		}
		return Wallet{}, err
	}
	w.ID = id.String()
	w.CreatedAt = createdAt.UTC()
	return w, nil
}
