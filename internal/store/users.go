package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/review-seller-golang/internal/models"
)

const userColumns = `id, date_and_time, date_and_time_formated, first_name, last_name,
	full_name, email, phone, country, gender, password, role, status,
	created_at, updated_at`

// NewUser carries the fields required to register an account.
// PasswordHash must already be bcrypt-hashed by the caller.
type NewUser struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Country      string
	Gender       string
	PasswordHash string
}

// UserFields carries a partial profile update.
type UserFields struct {
	FirstName *string
	LastName  *string
	Country   *string
	Gender    *string
	Role      *string
	Status    *string
}

// UserListOptions extends the common listing knobs with the account
// filters.
type UserListOptions struct {
	ListOptions
	Gender   string // ignored when not a known gender
	Role     string // ignored when not a known role
	Status   string // ignored when not a known status
	FromDate *time.Time
	ToDate   *time.Time
}

// CreateUser registers an account. Email and phone must both be unique,
// compared case-insensitively against the whole value.
func CreateUser(ctx context.Context, db *sql.DB, n NewUser) (*models.User, error) {
	email := strings.TrimSpace(n.Email)
	phone := strings.TrimSpace(n.Phone)

	if taken, err := userFieldTaken(ctx, db, "email", email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := userFieldTaken(ctx, db, "phone", phone, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrPhoneTaken
	}

	now := time.Now()
	user := &models.User{
		ID:                  NewID(),
		DateAndTime:         now,
		DateAndTimeFormated: formatDateOnly(now),
		FirstName:           strings.TrimSpace(n.FirstName),
		LastName:            strings.TrimSpace(n.LastName),
		Email:               email,
		Phone:               phone,
		Country:             strings.TrimSpace(n.Country),
		Gender:              n.Gender,
		Password:            n.PasswordHash,
		Role:                "user",
		Status:              "pending",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	user.FullName = user.FirstName + " " + user.LastName

	_, err := db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.DateAndTime, user.DateAndTimeFormated, user.FirstName, user.LastName,
		user.FullName, user.Email, user.Phone, user.Country, user.Gender, user.Password,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// GetUser returns one account by id.
func GetUser(ctx context.Context, db *sql.DB, id string) (*models.User, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	user, err := scanUser(db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns one account by email (case-insensitive), for
// login.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*models.User, error) {
	user, err := scanUser(db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER(?)`, strings.TrimSpace(email),
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return user, nil
}

// ListUsers returns a page of accounts.
func ListUsers(ctx context.Context, db *sql.DB, opts UserListOptions) ([]models.User, int, error) {
	q := listQuery{
		table:   "users",
		columns: userColumns,
		page:    opts.Page,
		limit:   opts.Limit,
	}
	q.search(opts.Search, "full_name", "email", "phone", "country")
	q.dateRange("date_and_time", opts.FromDate, opts.ToDate)
	if validOption(opts.Gender, models.UserGenders) {
		q.and("gender = ?", opts.Gender)
	}
	if validOption(opts.Role, models.UserRoles) {
		q.and("role = ?", opts.Role)
	}
	if validOption(opts.Status, models.UserStatuses) {
		q.and("status = ?", opts.Status)
	}

	var users []models.User
	total, err := q.run(ctx, db, func(rows *sql.Rows) error {
		user, err := scanUser(rows)
		if err != nil {
			return err
		}
		users = append(users, *user)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateUser applies a partial profile update. FullName is re-derived
// whenever either name part changes.
func UpdateUser(ctx context.Context, db *sql.DB, id string, f UserFields) (*models.User, error) {
	user, err := GetUser(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if f.FirstName != nil {
		user.FirstName = strings.TrimSpace(*f.FirstName)
	}
	if f.LastName != nil {
		user.LastName = strings.TrimSpace(*f.LastName)
	}
	user.FullName = user.FirstName + " " + user.LastName
	if f.Country != nil {
		user.Country = strings.TrimSpace(*f.Country)
	}
	if f.Gender != nil {
		user.Gender = *f.Gender
	}
	if f.Role != nil {
		user.Role = *f.Role
	}
	if f.Status != nil {
		user.Status = *f.Status
	}
	user.UpdatedAt = time.Now()

	_, err = db.ExecContext(ctx,
		`UPDATE users SET first_name = ?, last_name = ?, full_name = ?, country = ?,
		 gender = ?, role = ?, status = ?, updated_at = ? WHERE id = ?`,
		user.FirstName, user.LastName, user.FullName, user.Country, user.Gender,
		user.Role, user.Status, user.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account.
func DeleteUser(ctx context.Context, db *sql.DB, id string) error {
	if _, err := GetUser(ctx, db, id); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.DateAndTime, &user.DateAndTimeFormated, &user.FirstName,
		&user.LastName, &user.FullName, &user.Email, &user.Phone, &user.Country,
		&user.Gender, &user.Password, &user.Role, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func userFieldTaken(ctx context.Context, db *sql.DB, column, value, excludeID string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE LOWER(`+column+`) = LOWER(?) AND id <> ?`,
		value, excludeID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking user %s: %w", column, err)
	}
	return n > 0, nil
}
