package models

import "time"

// Order statuses and payment methods.
var (
	OrderStatuses  = []string{"pending", "completed", "cancelled", "returned"}
	PaymentMethods = []string{"credit_card", "mobile_bank", "cash_on_delivery", "bank"}
)

// BillingAddress is embedded in every order. FullName is derived from
// the first and last name at checkout time.
type BillingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Address   string `json:"address"`
}

// Order defines the struct for the 'orders' table. The item fields are a
// snapshot taken at purchase time; editing or deleting the source item
// later never changes an existing order. ItemID is kept for reference
// only and is not a live foreign key.
type Order struct {
	ID                          string         `json:"id" db:"id"`
	Shop                        string         `json:"-" db:"shop"`
	DateAndTime                 time.Time      `json:"date_and_time" db:"date_and_time"`
	DateAndTimeFormated         string         `json:"date_and_time_formated" db:"date_and_time_formated"`
	ItemID                      string         `json:"item_id" db:"item_id"`
	ItemName                    string         `json:"item_name" db:"item_name"`
	Categories                  string         `json:"categories" db:"categories"`
	ReviewFrom                  string         `json:"review_from" db:"review_from"`
	PriceUSD                    float64        `json:"price_usd" db:"price_usd"`
	PriceBDT                    float64        `json:"price_bdt" db:"price_bdt"`
	Price                       float64        `json:"price" db:"price"`
	BillingAddress              BillingAddress `json:"billing_address"`
	DeliveryDateAndTime         *time.Time     `json:"delivery_date_and_time" db:"delivery_date_and_time"`
	DeliveryDateAndTimeFormated *string        `json:"delivery_date_and_time_formated" db:"delivery_date_and_time_formated"`
	PaymentMethod               *string        `json:"payment_method" db:"payment_method"`
	Status                      string         `json:"status" db:"status"`
	Notes                       string         `json:"notes" db:"notes"`
	CreatedAt                   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at" db:"updated_at"`
}
