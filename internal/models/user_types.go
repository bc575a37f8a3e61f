package models

import "time"

// User enums.
var (
	UserRoles    = []string{"user", "admin", "manager"}
	UserStatuses = []string{"pending", "active", "hold"}
	UserGenders  = []string{"male", "female", "other"}
)

// User defines the struct for the 'users' table. Password holds the
// bcrypt hash and never leaves the server.
type User struct {
	ID                  string    `json:"id" db:"id"`
	DateAndTime         time.Time `json:"date_and_time" db:"date_and_time"`
	DateAndTimeFormated string    `json:"date_and_time_formated" db:"date_and_time_formated"`
	FirstName           string    `json:"first_name" db:"first_name"`
	LastName            string    `json:"last_name" db:"last_name"`
	FullName            string    `json:"full_name" db:"full_name"`
	Email               string    `json:"email" db:"email"`
	Phone               string    `json:"phone" db:"phone"`
	Country             string    `json:"country" db:"country"`
	Gender              string    `json:"gender" db:"gender"`
	Password            string    `json:"-" db:"password"`
	Role                string    `json:"role" db:"role"`
	Status              string    `json:"status" db:"status"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
