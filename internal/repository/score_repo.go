package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnbuddy-backend/internal/models"
	"learnbuddy-backend/internal/scoring"
)

type ScoreRepo struct {
	pool *pgxpool.Pool
}

func NewScoreRepo(pool *pgxpool.Pool) *ScoreRepo {
	return &ScoreRepo{pool: pool}
}

const scoreColumns = `score_algebra, score_arithmetic, score_probability, score_growthdepr, score_quadratic, score_sqnseries`

func (r *ScoreRepo) Get(ctx context.Context, userID uuid.UUID) (*models.ChapterScores, error) {
	scores := &models.ChapterScores{}
	query := fmt.Sprintf("SELECT user_id, %s FROM chapter_scores WHERE user_id = $1", scoreColumns)

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&scores.UserID, &scores.Algebra, &scores.Arithmetic, &scores.Probability,
		&scores.GrowthDepr, &scores.Quadratic, &scores.SequenceSeries,
	)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// ApplyAnswer runs the read-modify-write for one answered question under a
// single transaction: the chapter row is locked, the chapter score updated and
// the aggregate recomputed from all six scores before commit. Two concurrent
// submissions for the same user serialize on the row lock instead of losing
// an update. column must come from scoring.ChapterColumn.
func (r *ScoreRepo) ApplyAnswer(ctx context.Context, userID uuid.UUID, column string, correct bool, difficulty int) (newScore, overall float64, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback(ctx)

	scores := &models.ChapterScores{}
	query := fmt.Sprintf("SELECT user_id, %s FROM chapter_scores WHERE user_id = $1 FOR UPDATE", scoreColumns)
	err = tx.QueryRow(ctx, query, userID).Scan(
		&scores.UserID, &scores.Algebra, &scores.Arithmetic, &scores.Probability,
		&scores.GrowthDepr, &scores.Quadratic, &scores.SequenceSeries,
	)
	if err != nil {
		return 0, 0, err
	}

	current, ok := scores.ByColumn(column)
	if !ok {
		return 0, 0, fmt.Errorf("unknown chapter score column %q", column)
	}

	newScore = scoring.UpdateChapterScore(current, correct, difficulty)

	update := fmt.Sprintf("UPDATE chapter_scores SET %s = $1 WHERE user_id = $2", column)
	if _, err = tx.Exec(ctx, update, newScore, userID); err != nil {
		return 0, 0, err
	}

	updated, err := r.withColumn(scores, column, newScore)
	if err != nil {
		return 0, 0, err
	}
	overall = scoring.Aggregate(updated.All())

	if _, err = tx.Exec(ctx, "UPDATE users SET score = $1 WHERE id = $2", overall, userID); err != nil {
		return 0, 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return newScore, overall, nil
}

func (r *ScoreRepo) withColumn(scores *models.ChapterScores, column string, value float64) (*models.ChapterScores, error) {
	updated := *scores
	switch column {
	case "score_algebra":
		updated.Algebra = value
	case "score_arithmetic":
		updated.Arithmetic = value
	case "score_probability":
		updated.Probability = value
	case "score_growthdepr":
		updated.GrowthDepr = value
	case "score_quadratic":
		updated.Quadratic = value
	case "score_sqnseries":
		updated.SequenceSeries = value
	default:
		return nil, fmt.Errorf("unknown chapter score column %q", column)
	}
	return &updated, nil
}
