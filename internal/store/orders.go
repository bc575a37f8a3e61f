package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/review-seller-golang/internal/models"
)

const orderColumns = `id, shop, date_and_time, date_and_time_formated, item_id, item_name,
	categories, review_from, price_usd, price_bdt, price,
	billing_first_name, billing_last_name, billing_full_name, billing_email,
	billing_phone, billing_country, billing_address,
	delivery_date_and_time, delivery_date_and_time_formated, payment_method,
	status, notes, created_at, updated_at`

// OrderUpdate carries the staff-editable order fields. Status and
// payment method are required on update even though they are optional on
// create; the original API contract is asymmetric here and clients
// depend on it.
type OrderUpdate struct {
	DeliveryDateAndTime *time.Time
	PaymentMethod       string
	Status              string
	Notes               *string
}

// OrderListOptions extends the common listing knobs with the checkout
// filters. From/To are inclusive day boundaries.
type OrderListOptions struct {
	ListOptions
	FromDate *time.Time
	ToDate   *time.Time
	Payment  string // ignored when not a known payment method
	Status   string // ignored when not a known status
}

// CreateOrder purchases an item from the shop's collections. The item is
// resolved with a single lookup over the shared items table restricted
// to the shop kind; only active items can be purchased. The sale fields
// are snapshotted into the order at this moment and never re-read from
// the item.
func CreateOrder(ctx context.Context, db *sql.DB, kind CollectionKind, itemID string, addr models.BillingAddress, payment *string, notes string) (*models.Order, error) {
	if !ValidID(itemID) {
		return nil, ErrInvalidID
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND kind = ?`, itemID, string(kind),
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolving checkout item: %w", err)
	}
	if item.Status != models.ItemStatusActive {
		return nil, ErrItemUnavailable
	}

	addr.FullName = strings.TrimSpace(addr.FirstName) + " " + strings.TrimSpace(addr.LastName)

	now := time.Now()
	order := &models.Order{
		ID:                  NewID(),
		Shop:                string(kind),
		DateAndTime:         now,
		DateAndTimeFormated: formatDateOnly(now),
		ItemID:              item.ID,
		ItemName:            item.ItemName,
		Categories:          item.CategoriesName,
		ReviewFrom:          item.ReviewFrom,
		PriceUSD:            item.PriceUSD,
		PriceBDT:            item.PriceBDT,
		Price:               item.Price,
		BillingAddress:      addr,
		PaymentMethod:       payment,
		Status:              "pending",
		Notes:               notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.Shop, order.DateAndTime, order.DateAndTimeFormated, order.ItemID,
		order.ItemName, order.Categories, order.ReviewFrom, order.PriceUSD, order.PriceBDT,
		order.Price, addr.FirstName, addr.LastName, addr.FullName, addr.Email, addr.Phone,
		addr.Country, addr.Address, nil, nil, order.PaymentMethod, order.Status, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	return order, nil
}

// GetOrder returns one order from the shop's ledger.
func GetOrder(ctx context.Context, db *sql.DB, kind CollectionKind, id string) (*models.Order, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ? AND shop = ?`, id, string(kind),
	)
	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return order, nil
}

// ListOrders returns a page of the shop's orders.
func ListOrders(ctx context.Context, db *sql.DB, kind CollectionKind, opts OrderListOptions) ([]models.Order, int, error) {
	q := listQuery{
		table:   "orders",
		columns: orderColumns,
		page:    opts.Page,
		limit:   opts.Limit,
	}
	q.and("shop = ?", string(kind))
	q.search(opts.Search, "item_name", "billing_full_name", "billing_email", "billing_phone")
	q.dateRange("date_and_time", opts.FromDate, opts.ToDate)

	if validOption(opts.Payment, models.PaymentMethods) {
		q.and("payment_method = ?", opts.Payment)
	}
	if validOption(opts.Status, models.OrderStatuses) {
		q.and("status = ?", opts.Status)
	}

	var orders []models.Order
	total, err := q.run(ctx, db, func(rows *sql.Rows) error {
		order, err := scanOrder(rows)
		if err != nil {
			return err
		}
		orders = append(orders, *order)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateOrder applies the staff update: delivery schedule, payment,
// status and notes. The formatted delivery date is recomputed from the
// raw timestamp. The snapshotted sale fields are never touched.
func UpdateOrder(ctx context.Context, db *sql.DB, kind CollectionKind, id string, u OrderUpdate) (*models.Order, error) {
	order, err := GetOrder(ctx, db, kind, id)
	if err != nil {
		return nil, err
	}

	order.DeliveryDateAndTime = u.DeliveryDateAndTime
	order.DeliveryDateAndTimeFormated = nil
	if u.DeliveryDateAndTime != nil {
		formatted := formatDateOnly(*u.DeliveryDateAndTime)
		order.DeliveryDateAndTimeFormated = &formatted
	}
	order.PaymentMethod = &u.PaymentMethod
	order.Status = u.Status
	if u.Notes != nil {
		order.Notes = strings.TrimSpace(*u.Notes)
	}
	order.UpdatedAt = time.Now()

	_, err = db.ExecContext(ctx,
		`UPDATE orders SET delivery_date_and_time = ?, delivery_date_and_time_formated = ?,
		 payment_method = ?, status = ?, notes = ?, updated_at = ?
		 WHERE id = ? AND shop = ?`,
		order.DeliveryDateAndTime, order.DeliveryDateAndTimeFormated, order.PaymentMethod,
		order.Status, order.Notes, order.UpdatedAt, id, string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	return order, nil
}

// DeleteOrder removes an order from the shop's ledger.
func DeleteOrder(ctx context.Context, db *sql.DB, kind CollectionKind, id string) error {
	if _, err := GetOrder(ctx, db, kind, id); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`DELETE FROM orders WHERE id = ? AND shop = ?`, id, string(kind),
	); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}
	var notes sql.NullString
	var deliveryFormatted, payment sql.NullString
	var delivery sql.NullTime

	err := row.Scan(
		&order.ID, &order.Shop, &order.DateAndTime, &order.DateAndTimeFormated,
		&order.ItemID, &order.ItemName, &order.Categories, &order.ReviewFrom,
		&order.PriceUSD, &order.PriceBDT, &order.Price,
		&order.BillingAddress.FirstName, &order.BillingAddress.LastName,
		&order.BillingAddress.FullName, &order.BillingAddress.Email,
		&order.BillingAddress.Phone, &order.BillingAddress.Country,
		&order.BillingAddress.Address,
		&delivery, &deliveryFormatted, &payment, &order.Status, &notes,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Notes = notes.String
	if delivery.Valid {
		order.DeliveryDateAndTime = &delivery.Time
	}
	if deliveryFormatted.Valid {
		order.DeliveryDateAndTimeFormated = &deliveryFormatted.String
	}
	if payment.Valid {
		order.PaymentMethod = &payment.String
	}
	return order, nil
}
