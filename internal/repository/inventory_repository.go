package repository

import (
	"context"
	"errors"
	"strings"

	"cartdesk-backend/internal/db"
	"cartdesk-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	DB *db.Postgres
}

// List returns items ordered by category then name, the order the
// inventory screen renders.
func (r InventoryRepository) List(ctx context.Context, limit int) ([]domain.InventoryItem, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, category, unit, quantity, reorder_threshold, notes, created_at, updated_at
		FROM inventory_items
		WHERE deleted_at IS NULL
		ORDER BY category ASC, name ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.InventoryItem
	for rows.Next() {
		var it domain.InventoryItem
		var category string
		if err := rows.Scan(&it.ID, &it.Name, &category, &it.Unit, &it.Quantity, &it.ReorderThreshold, &it.Notes, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Category = domain.InventoryCategory(category)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r InventoryRepository) Get(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, category, unit, quantity, reorder_threshold, notes, created_at, updated_at
		FROM inventory_items
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	var it domain.InventoryItem
	var category string
	if err := row.Scan(&it.ID, &it.Name, &category, &it.Unit, &it.Quantity, &it.ReorderThreshold, &it.Notes, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	it.Category = domain.InventoryCategory(category)
	return &it, nil
}

type CreateInventoryInput struct {
	Name             string
	Category         domain.InventoryCategory
	Unit             string
	Quantity         int
	ReorderThreshold int
	Notes            string
}

func (r InventoryRepository) Create(ctx context.Context, in CreateInventoryInput) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	var category string
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO inventory_items (name, category, unit, quantity, reorder_threshold, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6, now(), now())
		RETURNING id, name, category, unit, quantity, reorder_threshold, notes, created_at, updated_at
	`, in.Name, string(in.Category), in.Unit, in.Quantity, in.ReorderThreshold, in.Notes).Scan(
		&it.ID, &it.Name, &category, &it.Unit, &it.Quantity, &it.ReorderThreshold, &it.Notes, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.Category = domain.InventoryCategory(category)
	return &it, nil
}

// UpdateInventoryInput carries a partial patch; nil fields are untouched.
type UpdateInventoryInput struct {
	Name             *string
	Category         *domain.InventoryCategory
	Unit             *string
	Quantity         *int
	ReorderThreshold *int
	Notes            *string
}

func (r InventoryRepository) Update(ctx context.Context, id int64, in UpdateInventoryInput) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	var category string
	err := r.DB.Pool.QueryRow(ctx, `
		UPDATE inventory_items
		SET name              = COALESCE($2, name),
		    category          = COALESCE($3, category),
		    unit              = COALESCE($4, unit),
		    quantity          = GREATEST(COALESCE($5, quantity), 0),
		    reorder_threshold = GREATEST(COALESCE($6, reorder_threshold), 0),
		    notes             = COALESCE($7, notes),
		    updated_at        = now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, name, category, unit, quantity, reorder_threshold, notes, created_at, updated_at
	`, id, in.Name, (*string)(in.Category), in.Unit, in.Quantity, in.ReorderThreshold, in.Notes).Scan(
		&it.ID, &it.Name, &category, &it.Unit, &it.Quantity, &it.ReorderThreshold, &it.Notes, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	it.Category = domain.InventoryCategory(category)
	return &it, nil
}

func (r InventoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE inventory_items SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type AdjustInventoryInput struct {
	ItemID int64
	Change int
	Kind   string
	Note   string
}

// Adjust applies a quantity change inside a transaction and records a
// history row. Kind "reduce" forces the change negative, "recount"
// interprets Change as the absolute quantity.
func (r InventoryRepository) Adjust(ctx context.Context, in AdjustInventoryInput) (*domain.InventoryItem, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var current domain.InventoryItem
	var category string
	err = tx.QueryRow(ctx, `
		SELECT id, name, category, unit, quantity, reorder_threshold, notes, created_at, updated_at
		FROM inventory_items
		WHERE id=$1 AND deleted_at IS NULL
		FOR UPDATE
	`, in.ItemID).Scan(&current.ID, &current.Name, &category, &current.Unit, &current.Quantity, &current.ReorderThreshold, &current.Notes, &current.CreatedAt, &current.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	current.Category = domain.InventoryCategory(category)

	change := in.Change
	switch strings.ToLower(strings.TrimSpace(in.Kind)) {
	case "reduce":
		if change > 0 {
			change = -change
		}
	case "recount":
		if change < 0 {
			change = 0
		}
		change = change - current.Quantity
	}

	quantity := current.Quantity + change
	if quantity < 0 {
		quantity = 0
	}

	if _, err := tx.Exec(ctx, `
		UPDATE inventory_items SET quantity=$1, updated_at=now() WHERE id=$2
	`, quantity, in.ItemID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO inventory_history (item_id, change, remaining, kind, note, created_at)
		VALUES ($1,$2,$3,$4,$5, now())
	`, in.ItemID, change, quantity, in.Kind, in.Note); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	current.Quantity = quantity
	return &current, nil
}

func (r InventoryRepository) History(ctx context.Context, itemID int64, limit int) ([]domain.InventoryAdjustment, error) {
	var exists bool
	if err := r.DB.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM inventory_items WHERE id=$1 AND deleted_at IS NULL)
	`, itemID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, item_id, change, remaining, kind, note, created_at
		FROM inventory_history
		WHERE item_id=$1
		ORDER BY created_at DESC
		LIMIT $2
	`, itemID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.InventoryAdjustment
	for rows.Next() {
		var a domain.InventoryAdjustment
		if err := rows.Scan(&a.ID, &a.ItemID, &a.Change, &a.Remaining, &a.Kind, &a.Note, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
