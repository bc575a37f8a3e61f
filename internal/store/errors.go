package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for business-rule failures. Handlers translate these
// into the {success:false, message} envelope; anything else is an
// unexpected internal error.
var (
	ErrInvalidID        = errors.New("invalid id format")
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryHasItems = errors.New("category contains items")
	ErrItemUnavailable  = errors.New("item is not available for purchase")
)

// Uniqueness failures on user registration keep their own identity so
// the handler can say which field collided, while still matching
// errors.Is(err, ErrDuplicate).
var (
	ErrEmailTaken = fmt.Errorf("email %w", ErrDuplicate)
	ErrPhoneTaken = fmt.Errorf("phone %w", ErrDuplicate)
)
