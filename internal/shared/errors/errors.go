package errors

import "errors"

var (
	ErrFeedNotFound      = errors.New("feed not found")
	ErrInvalidFeedID     = errors.New("invalid feed id")
	ErrFeedsPathNotFound = errors.New("feeds directory does not exist")
)
