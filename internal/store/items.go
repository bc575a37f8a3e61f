package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/01moynul/review-seller-golang/internal/blob"
	"github.com/01moynul/review-seller-golang/internal/models"
)

const itemColumns = `id, collection, kind, item_name, categories_id, categories_name,
	features, price_usd, price_bdt, price, quentity, duration, duration_type,
	review_from, notes, status, attachment_public_id, attachment_url,
	created_at, updated_at`

// ItemFields carries one request's worth of item fields. Nil pointers
// mean the field was not supplied: create fills defaults, update leaves
// the stored value untouched.
type ItemFields struct {
	ItemName     *string
	CategoriesID *string
	Features     []string
	PriceUSD     *float64
	PriceBDT     *float64
	Price        *float64
	Quantity     *int
	Duration     *int
	DurationType *string
	ReviewFrom   *string
	Notes        *string
	Status       *string
	Attachment   *blob.Attachment
}

// ItemListOptions extends the common listing knobs with the item
// collection filters.
type ItemListOptions struct {
	ListOptions
	CategoriesID string // rejected with ErrInvalidID when malformed
	Status       string // silently ignored when not a known status
}

// CreateItem persists a new item in the given collection and increments
// the owning category's items_count. The category must exist, and the
// item name must be unique within the collection (case-insensitive,
// whole-name comparison).
func CreateItem(ctx context.Context, db *sql.DB, col Collection, f ItemFields) (*models.Item, error) {
	if f.ItemName == nil || f.CategoriesID == nil {
		return nil, fmt.Errorf("item_name and categories_id are required")
	}
	if !ValidID(*f.CategoriesID) {
		return nil, ErrInvalidID
	}

	cat, err := GetCategory(ctx, db, *f.CategoriesID)
	if err == ErrNotFound {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(*f.ItemName)
	taken, err := itemNameTaken(ctx, db, col.Slug, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicate
	}

	now := time.Now()
	item := &models.Item{
		ID:             NewID(),
		Collection:     col.Slug,
		Kind:           string(col.Kind),
		ItemName:       name,
		CategoriesID:   cat.ID,
		CategoriesName: cat.Name,
		Features:       f.Features,
		DurationType:   "Day",
		Status:         models.ItemStatusActive,
		Attachment:     f.Attachment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	applyItemFields(item, f)
	if item.Features == nil {
		item.Features = []string{}
	}

	featuresJSON, err := json.Marshal(item.Features)
	if err != nil {
		return nil, fmt.Errorf("encoding features: %w", err)
	}

	var attPublicID, attURL *string
	if item.Attachment != nil {
		attPublicID, attURL = &item.Attachment.PublicID, &item.Attachment.URL
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Collection, item.Kind, item.ItemName, item.CategoriesID, item.CategoriesName,
		string(featuresJSON), item.PriceUSD, item.PriceBDT, item.Price, item.Quantity,
		item.Duration, item.DurationType, item.ReviewFrom, item.Notes, item.Status,
		attPublicID, attURL, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	// The counter is advisory: if this adjustment fails after the item is
	// durably saved, the create still succeeded and the reconcile sweep
	// repairs the count.
	if err := AdjustItemsCount(ctx, db, item.CategoriesID, +1); err != nil {
		log.Printf("items_count not incremented for category %s after creating item %s: %v (run categories reconcile)",
			item.CategoriesID, item.ID, err)
	}
	return item, nil
}

// UpdateItem applies a partial update: only supplied fields change, each
// validated under the same rules as create. Changing the category moves
// ownership and runs the paired count adjustments. It returns the
// attachment that was replaced, if any, so the caller can delete the old
// blob once the update is safely stored.
func UpdateItem(ctx context.Context, db *sql.DB, col Collection, id string, f ItemFields) (*models.Item, *blob.Attachment, error) {
	if !ValidID(id) {
		return nil, nil, ErrInvalidID
	}

	item, err := GetItem(ctx, db, col, id)
	if err != nil {
		return nil, nil, err
	}
	prevCategoryID := item.CategoriesID

	if f.ItemName != nil {
		name := strings.TrimSpace(*f.ItemName)
		taken, err := itemNameTaken(ctx, db, col.Slug, name, id)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			return nil, nil, ErrDuplicate
		}
		item.ItemName = name
	}

	if f.CategoriesID != nil {
		if !ValidID(*f.CategoriesID) {
			return nil, nil, ErrInvalidID
		}
		item.CategoriesID = *f.CategoriesID
	}

	// Refresh the denormalized name from the current category on every
	// write, whether or not the reference changed.
	cat, err := GetCategory(ctx, db, item.CategoriesID)
	if err == ErrNotFound {
		return nil, nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	item.CategoriesName = cat.Name

	if f.Features != nil {
		item.Features = f.Features
	}
	applyItemFields(item, f)

	var replaced *blob.Attachment
	if f.Attachment != nil {
		replaced = item.Attachment
		item.Attachment = f.Attachment
	}
	item.UpdatedAt = time.Now()

	featuresJSON, err := json.Marshal(item.Features)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding features: %w", err)
	}
	var attPublicID, attURL *string
	if item.Attachment != nil {
		attPublicID, attURL = &item.Attachment.PublicID, &item.Attachment.URL
	}

	_, err = db.ExecContext(ctx,
		`UPDATE items SET item_name = ?, categories_id = ?, categories_name = ?, features = ?,
		 price_usd = ?, price_bdt = ?, price = ?, quentity = ?, duration = ?, duration_type = ?,
		 review_from = ?, notes = ?, status = ?, attachment_public_id = ?, attachment_url = ?,
		 updated_at = ?
		 WHERE id = ? AND collection = ?`,
		item.ItemName, item.CategoriesID, item.CategoriesName, string(featuresJSON),
		item.PriceUSD, item.PriceBDT, item.Price, item.Quantity, item.Duration, item.DurationType,
		item.ReviewFrom, item.Notes, item.Status, attPublicID, attURL,
		item.UpdatedAt, id, col.Slug,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("updating item: %w", err)
	}

	// Ownership transfer: two sequential adjustments with no atomicity
	// between them. A failure here leaves the ledger transiently
	// inconsistent, which is logged distinctly and repaired by the
	// categories reconcile sweep.
	if item.CategoriesID != prevCategoryID {
		if err := AdjustItemsCount(ctx, db, prevCategoryID, -1); err != nil {
			log.Printf("items_count transfer incomplete: decrement of category %s failed for item %s: %v (run categories reconcile)",
				prevCategoryID, item.ID, err)
		}
		if err := AdjustItemsCount(ctx, db, item.CategoriesID, +1); err != nil {
			log.Printf("items_count transfer incomplete: increment of category %s failed for item %s: %v (run categories reconcile)",
				item.CategoriesID, item.ID, err)
		}
	}
	return item, replaced, nil
}

// DeleteItem removes an item and decrements its category's items_count.
// It returns the item's attachment, if any, so the caller can delete the
// blob best-effort.
func DeleteItem(ctx context.Context, db *sql.DB, col Collection, id string) (*blob.Attachment, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	item, err := GetItem(ctx, db, col, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ? AND collection = ?`, id, col.Slug,
	); err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}

	if err := AdjustItemsCount(ctx, db, item.CategoriesID, -1); err != nil {
		log.Printf("items_count not decremented for category %s after deleting item %s: %v (run categories reconcile)",
			item.CategoriesID, id, err)
	}
	return item.Attachment, nil
}

// GetItem returns one item from the given collection.
func GetItem(ctx context.Context, db *sql.DB, col Collection, id string) (*models.Item, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND collection = ?`, id, col.Slug,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns a page of the collection's items. A malformed
// categories filter is rejected; an unknown status filter is ignored.
func ListItems(ctx context.Context, db *sql.DB, col Collection, opts ItemListOptions) ([]models.Item, int, error) {
	q := listQuery{
		table:   "items",
		columns: itemColumns,
		page:    opts.Page,
		limit:   opts.Limit,
	}
	q.and("collection = ?", col.Slug)
	q.search(opts.Search, "item_name")

	if opts.CategoriesID != "" {
		if !ValidID(opts.CategoriesID) {
			return nil, 0, ErrInvalidID
		}
		q.and("categories_id = ?", opts.CategoriesID)
	}
	if validOption(opts.Status, models.ItemStatuses) {
		q.and("status = ?", opts.Status)
	}

	var items []models.Item
	total, err := q.run(ctx, db, func(rows *sql.Rows) error {
		item, err := scanItem(rows)
		if err != nil {
			return err
		}
		items = append(items, *item)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// applyItemFields copies the plain value fields that need no extra
// validation or bookkeeping.
func applyItemFields(item *models.Item, f ItemFields) {
	if f.PriceUSD != nil {
		item.PriceUSD = *f.PriceUSD
	}
	if f.PriceBDT != nil {
		item.PriceBDT = *f.PriceBDT
	}
	if f.Price != nil {
		item.Price = *f.Price
	}
	if f.Quantity != nil {
		item.Quantity = *f.Quantity
	}
	if f.Duration != nil {
		item.Duration = *f.Duration
	}
	if f.DurationType != nil {
		item.DurationType = *f.DurationType
	}
	if f.ReviewFrom != nil {
		item.ReviewFrom = strings.TrimSpace(*f.ReviewFrom)
	}
	if f.Notes != nil {
		item.Notes = strings.TrimSpace(*f.Notes)
	}
	if f.Status != nil {
		item.Status = *f.Status
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	var featuresJSON string
	var notes, attPublicID, attURL sql.NullString

	err := row.Scan(
		&item.ID, &item.Collection, &item.Kind, &item.ItemName, &item.CategoriesID,
		&item.CategoriesName, &featuresJSON, &item.PriceUSD, &item.PriceBDT, &item.Price,
		&item.Quantity, &item.Duration, &item.DurationType, &item.ReviewFrom, &notes,
		&item.Status, &attPublicID, &attURL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Notes = notes.String
	item.Features = []string{}
	if featuresJSON != "" {
		if err := json.Unmarshal([]byte(featuresJSON), &item.Features); err != nil {
			return nil, fmt.Errorf("decoding features: %w", err)
		}
	}
	if item.Features == nil {
		item.Features = []string{}
	}
	if attPublicID.Valid {
		item.Attachment = &blob.Attachment{PublicID: attPublicID.String, URL: attURL.String}
	}
	return item, nil
}

func itemNameTaken(ctx context.Context, db *sql.DB, collection, name, excludeID string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items
		 WHERE collection = ? AND LOWER(item_name) = LOWER(?) AND id <> ?`,
		collection, name, excludeID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking item name: %w", err)
	}
	return n > 0, nil
}
