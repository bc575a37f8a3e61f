package handlers

import (
	"database/sql"

	"github.com/01moynul/review-seller-golang/internal/blob"
)

// Handlers holds all dependencies for the request handlers: the shared
// database handle opened at startup and the attachment blob store. Both
// are injected from main.
type Handlers struct {
	DB   *sql.DB
	Blob blob.Store
}
