package repository

import (
	"context"
	"errors"
	"time"

	"cartdesk-backend/internal/db"
	"cartdesk-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type EventRepository struct {
	DB *db.Postgres
}

const eventColumns = `id, title, event_date, location, type, client_name, client_email, client_phone, status, notes, created_at, updated_at`

// ListEventsFilter narrows the calendar query. Nil bounds are open.
type ListEventsFilter struct {
	From   *time.Time
	To     *time.Time
	Status domain.EventStatus
	Limit  int
}

func (r EventRepository) List(ctx context.Context, f ListEventsFilter) ([]domain.Event, error) {
	if f.Limit <= 0 {
		f.Limit = 500
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE deleted_at IS NULL
		  AND ($1::date IS NULL OR event_date >= $1)
		  AND ($2::date IS NULL OR event_date <= $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY event_date ASC, title ASC
		LIMIT $4
	`, f.From, f.To, string(f.Status), f.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *ev)
	}
	return items, rows.Err()
}

type CreateEventInput struct {
	Title       string
	Location    string
	Type        domain.EventType
	ClientName  string
	ClientEmail string
	ClientPhone string
	Status      domain.EventStatus
	Notes       string
}

// CreateBatch inserts one event per date in a single transaction, all
// sharing the fields of in. Used for both single and weekly-recurring
// submissions.
func (r EventRepository) CreateBatch(ctx context.Context, in CreateEventInput, dates []time.Time) ([]domain.Event, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	created := make([]domain.Event, 0, len(dates))
	for _, date := range dates {
		row := tx.QueryRow(ctx, `
			INSERT INTO events (title, event_date, location, type, client_name, client_email, client_phone, status, notes, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now(), now())
			RETURNING `+eventColumns+`
		`, in.Title, date.Format("2006-01-02"), in.Location, string(in.Type), in.ClientName, in.ClientEmail, in.ClientPhone, string(in.Status), in.Notes)
		ev, err := scanEvent(row)
		if err != nil {
			return nil, err
		}
		created = append(created, *ev)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateEventInput carries a partial patch; nil fields are untouched.
type UpdateEventInput struct {
	Title       *string
	Date        *time.Time
	Location    *string
	Type        *domain.EventType
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	Status      *domain.EventStatus
	Notes       *string
}

func (r EventRepository) Update(ctx context.Context, id int64, in UpdateEventInput) (*domain.Event, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE events
		SET title        = COALESCE($2, title),
		    event_date   = COALESCE($3, event_date),
		    location     = COALESCE($4, location),
		    type         = COALESCE($5, type),
		    client_name  = COALESCE($6, client_name),
		    client_email = COALESCE($7, client_email),
		    client_phone = COALESCE($8, client_phone),
		    status       = COALESCE($9, status),
		    notes        = COALESCE($10, notes),
		    updated_at   = now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+eventColumns+`
	`, id, in.Title, in.Date, in.Location, (*string)(in.Type), in.ClientName, in.ClientEmail, in.ClientPhone, (*string)(in.Status), in.Notes)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (r EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE events SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEvent(row interface {
	Scan(dest ...any) error
}) (*domain.Event, error) {
	var ev domain.Event
	var typ, status string
	if err := row.Scan(
		&ev.ID,
		&ev.Title,
		&ev.Date,
		&ev.Location,
		&typ,
		&ev.ClientName,
		&ev.ClientEmail,
		&ev.ClientPhone,
		&status,
		&ev.Notes,
		&ev.CreatedAt,
		&ev.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ev.Type = domain.EventType(typ)
	ev.Status = domain.EventStatus(status)
	return &ev, nil
}
