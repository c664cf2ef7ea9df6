package podcast

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error a setter returns, so callers can
// tell rejected input apart from render or I/O failures.
var ErrValidation = errors.New("validation error")

func validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

var (
	ErrEmptyPerson         = validation("person needs a name or an email")
	ErrWebMasterEmail      = validation("webmaster must have an email")
	ErrInvalidFeedURL      = validation("feed url must be an absolute URL with a scheme like http:// or https://")
	ErrIncompleteCloud     = validation("all cloud fields must be present and not empty")
	ErrInvalidHour         = validation("skip hour must be between 0 and 23")
	ErrInvalidDay          = validation("skip day must be a weekday name")
	ErrInvalidLanguage     = validation("language must be a valid BCP 47 tag")
	ErrInvalidImage        = validation("image url must end with .jpg, .jpeg or .png")
	ErrInvalidCategory     = validation("unknown iTunes category")
	ErrIncompleteOwner     = validation("owner needs both name and email")
	ErrIncompleteEnclosure = validation("enclosure needs a url and a non-negative length")
	ErrEmptyCategory       = validation("category needs a term")
	ErrInvalidSize         = validation("unrecognized file size")
	ErrZeroTime            = validation("timestamp must not be zero")
	ErrInvalidChapter      = validation("chapter needs a title and a non-negative start")
)

var (
	ErrMissingRequired = errors.New("required fields not set (title, link, description)")
	ErrEmptyEntry      = errors.New("entry needs a title, description or content")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrEntryIndex      = errors.New("entry index out of range")
)
