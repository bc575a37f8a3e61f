package models

import "time"

// Category defines the struct for the 'categories' table.
//
// ItemsCount is denormalized: it is only ever moved by the paired
// increment/decrement calls in the item stores, and can be rebuilt from
// the items table by the reconcile operation.
type Category struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"categories_name" db:"categories_name"`
	ItemsCount int       `json:"items_count" db:"items_count"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
