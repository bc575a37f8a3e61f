package models

import "time"

// ContactStatuses lists the accepted workflow states for a message.
var ContactStatuses = []string{"pending", "completed", "cancelled"}

// Contact defines the struct for the 'contacts' table (the public
// contact form). No cross-entity invariants.
type Contact struct {
	ID                  string    `json:"id" db:"id"`
	DateAndTime         time.Time `json:"date_and_time" db:"date_and_time"`
	DateAndTimeFormated string    `json:"date_and_time_formated" db:"date_and_time_formated"`
	Name                string    `json:"name" db:"name"`
	Email               string    `json:"email" db:"email"`
	Phone               string    `json:"phone" db:"phone"`
	Subject             string    `json:"subject" db:"subject"`
	Message             string    `json:"message" db:"message"`
	Status              string    `json:"status" db:"status"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
