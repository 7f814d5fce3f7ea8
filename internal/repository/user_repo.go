package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnbuddy-backend/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password_hash, score, created_at
		FROM users WHERE email = $1`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Score, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password_hash, score, created_at
		FROM users WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Score, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// CreateFromPending promotes a pending signup to a verified user: the user row,
// its zeroed chapter_scores row, and the pending-row delete commit together.
func (r *UserRepo) CreateFromPending(ctx context.Context, pending *models.PendingSignup) (*models.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	user := &models.User{
		ID:           uuid.New(),
		Name:         pending.Name,
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		Score:        0.0,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash, score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Score,
	).Scan(&user.CreatedAt)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, "INSERT INTO chapter_scores (user_id) VALUES ($1)", user.ID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM pending_signups WHERE id = $1", pending.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return user, nil
}
