package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnbuddy-backend/internal/models"
)

type SignupRepo struct {
	pool *pgxpool.Pool
}

func NewSignupRepo(pool *pgxpool.Pool) *SignupRepo {
	return &SignupRepo{pool: pool}
}

func (r *SignupRepo) Create(ctx context.Context, pending *models.PendingSignup) error {
	pending.ID = uuid.New()

	return r.pool.QueryRow(ctx,
		`INSERT INTO pending_signups (id, name, email, password_hash, otp)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		pending.ID, pending.Name, pending.Email, pending.PasswordHash, pending.OTP,
	).Scan(&pending.CreatedAt)
}

func (r *SignupRepo) GetByEmail(ctx context.Context, email string) (*models.PendingSignup, error) {
	pending := &models.PendingSignup{}
	query := `SELECT id, name, email, password_hash, otp, created_at
		FROM pending_signups WHERE email = $1
		ORDER BY created_at DESC LIMIT 1`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&pending.ID, &pending.Name, &pending.Email, &pending.PasswordHash, &pending.OTP, &pending.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pending, nil
}

func (r *SignupRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pending_signups WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

func (r *SignupRepo) UpdateOTP(ctx context.Context, id uuid.UUID, otp string) error {
	_, err := r.pool.Exec(ctx, "UPDATE pending_signups SET otp = $1 WHERE id = $2", otp, id)
	return err
}

// DeleteAll purges every pending signup. Idempotent; invoked once at process
// startup so abandoned signups do not accumulate.
func (r *SignupRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM pending_signups")
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
