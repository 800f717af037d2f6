package auctionerrors

import "errors"

// Account errors
var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not logged in")
)

// Funding and bidding errors
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrCarNotFound       = errors.New("car not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBidTooLow         = errors.New("bid must be higher than current bid")
)
