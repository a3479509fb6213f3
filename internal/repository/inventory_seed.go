package repository

import (
	"context"

	"cartdesk-backend/internal/domain"
)

// SeedDefaults inserts starter inventory rows for a fresh install.
func (r InventoryRepository) SeedDefaults(ctx context.Context) error {
	defaults := []domain.InventoryItem{
		{Name: "Espresso Beans", Category: domain.CategoryBeans, Unit: "kg", Quantity: 5, ReorderThreshold: 2},
		{Name: "Whole Milk", Category: domain.CategoryMilk, Unit: "L", Quantity: 12, ReorderThreshold: 6},
		{Name: "Oat Milk", Category: domain.CategoryMilk, Unit: "L", Quantity: 6, ReorderThreshold: 3},
		{Name: "Vanilla Syrup", Category: domain.CategorySyrup, Unit: "bottle", Quantity: 3, ReorderThreshold: 1},
		{Name: "Caramel Syrup", Category: domain.CategorySyrup, Unit: "bottle", Quantity: 3, ReorderThreshold: 1},
		{Name: "12oz Cups", Category: domain.CategoryCups, Unit: "sleeve", Quantity: 10, ReorderThreshold: 4},
		{Name: "Lids", Category: domain.CategoryCups, Unit: "sleeve", Quantity: 10, ReorderThreshold: 4},
	}

	for _, it := range defaults {
		// Idempotent: inventory_items.name is unique among live rows.
		_, err := r.DB.Pool.Exec(ctx, `
			INSERT INTO inventory_items (name, category, unit, quantity, reorder_threshold, notes, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,'', now(), now())
			ON CONFLICT (name) WHERE deleted_at IS NULL DO NOTHING
		`, it.Name, string(it.Category), it.Unit, it.Quantity, it.ReorderThreshold)
		if err != nil {
			return err
		}
	}
	return nil
}
