package marketerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrCropNotFound    = errors.New("crop not found")
	ErrProfileNotFound = errors.New("reward profile not found")
	ErrConflict        = errors.New("concurrent update conflict")
)

// business logic errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrAuctionClosed   = errors.New("auction is not active")
	ErrAlreadyClosed   = errors.New("auction already closed")
)
