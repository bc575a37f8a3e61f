package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/review-seller-golang/internal/models"
)

const contactColumns = `id, date_and_time, date_and_time_formated, name, email, phone,
	subject, message, status, created_at, updated_at`

// ContactFields carries one request's worth of contact-form fields for
// partial updates.
type ContactFields struct {
	Name    *string
	Email   *string
	Phone   *string
	Subject *string
	Message *string
	Status  *string
}

// ContactListOptions extends the common listing knobs with the contact
// inbox filters.
type ContactListOptions struct {
	ListOptions
	Status   string // ignored when not a known status
	FromDate *time.Time
	ToDate   *time.Time
}

// CreateContact stores a submitted contact-form message.
func CreateContact(ctx context.Context, db *sql.DB, name, email, phone, subject, message string) (*models.Contact, error) {
	now := time.Now()
	contact := &models.Contact{
		ID:                  NewID(),
		DateAndTime:         now,
		DateAndTimeFormated: formatDateOnly(now),
		Name:                strings.TrimSpace(name),
		Email:               strings.TrimSpace(email),
		Phone:               strings.TrimSpace(phone),
		Subject:             strings.TrimSpace(subject),
		Message:             strings.TrimSpace(message),
		Status:              "pending",
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO contacts (`+contactColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contact.ID, contact.DateAndTime, contact.DateAndTimeFormated, contact.Name,
		contact.Email, contact.Phone, contact.Subject, contact.Message, contact.Status,
		contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}
	return contact, nil
}

// GetContact returns one contact message.
func GetContact(ctx context.Context, db *sql.DB, id string) (*models.Contact, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	contact := &models.Contact{}
	err := db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id,
	).Scan(
		&contact.ID, &contact.DateAndTime, &contact.DateAndTimeFormated, &contact.Name,
		&contact.Email, &contact.Phone, &contact.Subject, &contact.Message, &contact.Status,
		&contact.CreatedAt, &contact.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact: %w", err)
	}
	return contact, nil
}

// ListContacts returns a page of contact messages.
func ListContacts(ctx context.Context, db *sql.DB, opts ContactListOptions) ([]models.Contact, int, error) {
	q := listQuery{
		table:   "contacts",
		columns: contactColumns,
		page:    opts.Page,
		limit:   opts.Limit,
	}
	q.search(opts.Search, "name", "email", "phone", "subject")
	q.dateRange("date_and_time", opts.FromDate, opts.ToDate)
	if validOption(opts.Status, models.ContactStatuses) {
		q.and("status = ?", opts.Status)
	}

	var contacts []models.Contact
	total, err := q.run(ctx, db, func(rows *sql.Rows) error {
		var contact models.Contact
		if err := rows.Scan(
			&contact.ID, &contact.DateAndTime, &contact.DateAndTimeFormated, &contact.Name,
			&contact.Email, &contact.Phone, &contact.Subject, &contact.Message, &contact.Status,
			&contact.CreatedAt, &contact.UpdatedAt,
		); err != nil {
			return err
		}
		contacts = append(contacts, contact)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// UpdateContact applies a partial update to a contact message.
func UpdateContact(ctx context.Context, db *sql.DB, id string, f ContactFields) (*models.Contact, error) {
	contact, err := GetContact(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if f.Name != nil {
		contact.Name = strings.TrimSpace(*f.Name)
	}
	if f.Email != nil {
		contact.Email = strings.TrimSpace(*f.Email)
	}
	if f.Phone != nil {
		contact.Phone = strings.TrimSpace(*f.Phone)
	}
	if f.Subject != nil {
		contact.Subject = strings.TrimSpace(*f.Subject)
	}
	if f.Message != nil {
		contact.Message = strings.TrimSpace(*f.Message)
	}
	if f.Status != nil {
		contact.Status = *f.Status
	}
	contact.UpdatedAt = time.Now()

	_, err = db.ExecContext(ctx,
		`UPDATE contacts SET name = ?, email = ?, phone = ?, subject = ?, message = ?,
		 status = ?, updated_at = ? WHERE id = ?`,
		contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message,
		contact.Status, contact.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}
	return contact, nil
}

// DeleteContact removes a contact message.
func DeleteContact(ctx context.Context, db *sql.DB, id string) error {
	if _, err := GetContact(ctx, db, id); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	return nil
}
