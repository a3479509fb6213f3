package repository

import (
	"context"
	"errors"
	"time"

	"cartdesk-backend/internal/db"
	"cartdesk-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type CashSessionRepository struct {
	DB *db.Postgres
}

const cashColumns = `id, session_date, opening_total, closing_total, stall_fee, payouts, notes, created_at, updated_at`

// ListCashFilter narrows the reconciliation ledger query.
type ListCashFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// List returns sessions newest first.
func (r CashSessionRepository) List(ctx context.Context, f ListCashFilter) ([]domain.CashSession, error) {
	if f.Limit <= 0 {
		f.Limit = 200
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+cashColumns+`
		FROM cash_sessions
		WHERE deleted_at IS NULL
		  AND ($1::date IS NULL OR session_date >= $1)
		  AND ($2::date IS NULL OR session_date <= $2)
		ORDER BY session_date DESC, id DESC
		LIMIT $3
	`, f.From, f.To, f.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.CashSession
	for rows.Next() {
		s, err := scanCashSession(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

type CreateCashSessionInput struct {
	SessionDate  time.Time
	OpeningTotal int64
	ClosingTotal int64
	StallFee     int64
	Payouts      int64
	Notes        string
}

func (r CashSessionRepository) Create(ctx context.Context, in CreateCashSessionInput) (*domain.CashSession, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO cash_sessions (session_date, opening_total, closing_total, stall_fee, payouts, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6, now(), now())
		RETURNING `+cashColumns+`
	`, in.SessionDate.Format("2006-01-02"), in.OpeningTotal, in.ClosingTotal, in.StallFee, in.Payouts, in.Notes)
	return scanCashSession(row)
}

// UpdateCashSessionInput carries a partial patch; nil fields are untouched.
type UpdateCashSessionInput struct {
	SessionDate  *time.Time
	OpeningTotal *int64
	ClosingTotal *int64
	StallFee     *int64
	Payouts      *int64
	Notes        *string
}

func (r CashSessionRepository) Update(ctx context.Context, id int64, in UpdateCashSessionInput) (*domain.CashSession, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE cash_sessions
		SET session_date  = COALESCE($2, session_date),
		    opening_total = COALESCE($3, opening_total),
		    closing_total = COALESCE($4, closing_total),
		    stall_fee     = COALESCE($5, stall_fee),
		    payouts       = COALESCE($6, payouts),
		    notes         = COALESCE($7, notes),
		    updated_at    = now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+cashColumns+`
	`, id, in.SessionDate, in.OpeningTotal, in.ClosingTotal, in.StallFee, in.Payouts, in.Notes)
	s, err := scanCashSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r CashSessionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE cash_sessions SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCashSession(row interface {
	Scan(dest ...any) error
}) (*domain.CashSession, error) {
	var s domain.CashSession
	if err := row.Scan(
		&s.ID,
		&s.SessionDate,
		&s.OpeningTotal.Amount,
		&s.ClosingTotal.Amount,
		&s.StallFee.Amount,
		&s.Payouts.Amount,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
