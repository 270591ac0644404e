package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ErrArithmeticOverflow is returned when an amount leaves the balance range
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
	ErrArithmeticUnderflow = errors.New("arithmetic underflow")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidNonce     = errors.New("Invalid nonce")
)
