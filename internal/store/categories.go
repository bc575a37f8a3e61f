package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/review-seller-golang/internal/models"
)

const categoryColumns = "id, categories_name, items_count, created_at, updated_at"

// CreateCategory creates an empty category. The name must be unique
// across categories, compared case-insensitively against the whole name
// (anchored, not a substring match).
func CreateCategory(ctx context.Context, db *sql.DB, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)

	taken, err := categoryNameTaken(ctx, db, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicate
	}

	now := time.Now()
	cat := &models.Category{
		ID:        NewID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO categories (id, categories_name, items_count, created_at, updated_at)
		 VALUES (?, ?, 0, ?, ?)`,
		cat.ID, cat.Name, cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return cat, nil
}

// GetCategory returns a category by id.
func GetCategory(ctx context.Context, db *sql.DB, id string) (*models.Category, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	cat := &models.Category{}
	err := db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id,
	).Scan(&cat.ID, &cat.Name, &cat.ItemsCount, &cat.CreatedAt, &cat.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return cat, nil
}

// ListCategories returns a page of categories matching the search term.
func ListCategories(ctx context.Context, db *sql.DB, opts ListOptions) ([]models.Category, int, error) {
	q := listQuery{
		table:   "categories",
		columns: categoryColumns,
		page:    opts.Page,
		limit:   opts.Limit,
	}
	q.search(opts.Search, "categories_name")

	var cats []models.Category
	total, err := q.run(ctx, db, func(rows *sql.Rows) error {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.ItemsCount, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return err
		}
		cats = append(cats, cat)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return cats, total, nil
}

// RenameCategory changes a category's name, keeping the uniqueness rule.
// The category's own current name does not count as a collision.
func RenameCategory(ctx context.Context, db *sql.DB, id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)

	cat, err := GetCategory(ctx, db, id)
	if err != nil {
		return nil, err
	}

	taken, err := categoryNameTaken(ctx, db, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicate
	}

	now := time.Now()
	_, err = db.ExecContext(ctx,
		`UPDATE categories SET categories_name = ?, updated_at = ? WHERE id = ?`,
		name, now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("renaming category: %w", err)
	}
	cat.Name = name
	cat.UpdatedAt = now
	return cat, nil
}

// DeleteCategory removes a category. A category still owning items is
// protected: its items must be deleted or moved first.
func DeleteCategory(ctx context.Context, db *sql.DB, id string) error {
	cat, err := GetCategory(ctx, db, id)
	if err != nil {
		return err
	}
	if cat.ItemsCount > 0 {
		return ErrCategoryHasItems
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

// AdjustItemsCount moves items_count by delta (+1 or -1) in a single
// relative UPDATE, so concurrent adjustments cannot lose each other's
// writes. It does not clamp; callers are responsible for balanced calls,
// and ReconcileItemsCounts repairs any drift.
func AdjustItemsCount(ctx context.Context, db *sql.DB, id string, delta int) error {
	res, err := db.ExecContext(ctx,
		`UPDATE categories SET items_count = items_count + ?, updated_at = ? WHERE id = ?`,
		delta, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("adjusting items_count: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// ReconcileItemsCounts recomputes every category's items_count from the
// items table. This is the operational repair for the documented
// weak-consistency window around item writes: counts are advisory and
// this sweep makes any drift bounded instead of permanent. Returns the
// number of categories touched.
func ReconcileItemsCounts(ctx context.Context, db *sql.DB) (int64, error) {
	res, err := db.ExecContext(ctx,
		`UPDATE categories
		 SET items_count = (SELECT COUNT(*) FROM items WHERE items.categories_id = categories.id)`,
	)
	if err != nil {
		return 0, fmt.Errorf("reconciling items_count: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reconciling items_count: %w", err)
	}
	return n, nil
}

func categoryNameTaken(ctx context.Context, db *sql.DB, name, excludeID string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE LOWER(categories_name) = LOWER(?) AND id <> ?`,
		name, excludeID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking category name: %w", err)
	}
	return n > 0, nil
}
