package domain

import "errors"

// Root error kinds. Service packages wrap these so handlers can map any
// failure to a status code with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidState        = errors.New("invalid state")
	ErrOutOfStock          = errors.New("out of stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrValidation          = errors.New("validation error")
)
