package domain

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the ledger wraps one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrIO         = errors.New("io error")
)

var (
	ErrMissingField     = fmt.Errorf("%w: product, seller and date are required", ErrValidation)
	ErrInvalidQuantity  = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	ErrInvalidUnitPrice = fmt.Errorf("%w: unit price must be a positive number", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: date must be a valid YYYY-MM-DD date", ErrValidation)
	ErrUnknownFormat    = fmt.Errorf("%w: unknown report format", ErrValidation)

	ErrEmptyLedger    = fmt.Errorf("%w: no sales recorded", ErrNotFound)
	ErrSellerNotFound = fmt.Errorf("%w: no sales for seller", ErrNotFound)
)
