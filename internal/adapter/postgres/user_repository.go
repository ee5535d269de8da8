package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

const uniqueViolation = "23505"

// UserRepository implements port.UserRepository on PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts u. The unique index on email reports duplicates.
func (r *UserRepository) Create(ctx context.Context, u domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users
(id, email, full_name, company, plan_tier, credits_remaining, password_hash, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Email, u.FullName, u.Company, u.PlanTier, u.CreditsRemaining, u.PasswordHash, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return port.ErrEmailExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the user with email or nil when there is none.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT id, email, full_name, company, plan_tier, credits_remaining, password_hash, created_at
FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Company, &u.PlanTier, &u.CreditsRemaining, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
