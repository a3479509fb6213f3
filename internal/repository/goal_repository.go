package repository

import (
	"context"
	"errors"

	"cartdesk-backend/internal/db"
	"cartdesk-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type GoalRepository struct {
	DB *db.Postgres
}

const goalColumns = `id, title, month, is_done, notes, created_at, updated_at`

// List returns goals ordered by month then insertion; the grouping into
// month buckets happens in memory.
func (r GoalRepository) List(ctx context.Context, limit int) ([]domain.Goal, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE deleted_at IS NULL
		ORDER BY month ASC, id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Month, &g.IsDone, &g.Notes, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

type CreateGoalInput struct {
	Title string
	Month string
	Notes string
}

func (r GoalRepository) Create(ctx context.Context, in CreateGoalInput) (*domain.Goal, error) {
	var g domain.Goal
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO goals (title, month, is_done, notes, created_at, updated_at)
		VALUES ($1,$2,FALSE,$3, now(), now())
		RETURNING `+goalColumns+`
	`, in.Title, in.Month, in.Notes).Scan(&g.ID, &g.Title, &g.Month, &g.IsDone, &g.Notes, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGoalInput carries a partial patch; nil fields are untouched.
type UpdateGoalInput struct {
	Title  *string
	Month  *string
	IsDone *bool
	Notes  *string
}

func (r GoalRepository) Update(ctx context.Context, id int64, in UpdateGoalInput) (*domain.Goal, error) {
	var g domain.Goal
	err := r.DB.Pool.QueryRow(ctx, `
		UPDATE goals
		SET title      = COALESCE($2, title),
		    month      = COALESCE($3, month),
		    is_done    = COALESCE($4, is_done),
		    notes      = COALESCE($5, notes),
		    updated_at = now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+goalColumns+`
	`, id, in.Title, in.Month, in.IsDone, in.Notes).Scan(&g.ID, &g.Title, &g.Month, &g.IsDone, &g.Notes, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// ToggleDone flips the completion flag and returns the updated goal.
func (r GoalRepository) ToggleDone(ctx context.Context, id int64) (*domain.Goal, error) {
	var g domain.Goal
	err := r.DB.Pool.QueryRow(ctx, `
		UPDATE goals
		SET is_done = NOT is_done, updated_at = now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+goalColumns+`
	`, id).Scan(&g.ID, &g.Title, &g.Month, &g.IsDone, &g.Notes, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r GoalRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE goals SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
