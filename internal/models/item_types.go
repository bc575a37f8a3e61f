package models

import (
	"time"

	"github.com/01moynul/review-seller-golang/internal/blob"
)

// Item statuses. An item is either purchasable or parked; deletion
// removes the row entirely.
const (
	ItemStatusActive   = "active"
	ItemStatusDeactive = "deactive"
)

// ItemStatuses lists the accepted values for the status field.
var ItemStatuses = []string{ItemStatusActive, ItemStatusDeactive}

// DurationTypes lists the accepted billing periods for boost items.
var DurationTypes = []string{"Day", "Month", "Year"}

// Item defines the struct for the 'items' table. All nine collections
// (six marketplace review sets, three social media boost sets) share the
// row shape; Collection and Kind discriminate them and stay off the wire.
//
// Review collections use PriceUSD/PriceBDT, boost collections use
// Price/Quantity/Duration. "quentity" is misspelled in the original API
// contract and is kept that way for client compatibility.
type Item struct {
	ID             string           `json:"id" db:"id"`
	Collection     string           `json:"-" db:"collection"`
	Kind           string           `json:"-" db:"kind"`
	ItemName       string           `json:"item_name" db:"item_name"`
	CategoriesID   string           `json:"categories_id" db:"categories_id"`
	CategoriesName string           `json:"categories_name" db:"categories_name"`
	Features       []string         `json:"features" db:"features"`
	PriceUSD       float64          `json:"price_usd" db:"price_usd"`
	PriceBDT       float64          `json:"price_bdt" db:"price_bdt"`
	Price          float64          `json:"price" db:"price"`
	Quantity       int              `json:"quentity" db:"quentity"`
	Duration       int              `json:"duration" db:"duration"`
	DurationType   string           `json:"duration_type" db:"duration_type"`
	ReviewFrom     string           `json:"review_from" db:"review_from"`
	Notes          string           `json:"notes" db:"notes"`
	Status         string           `json:"status" db:"status"`
	Attachment     *blob.Attachment `json:"attachment"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}
