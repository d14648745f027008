package services

import (
	"errors"
)

// Sentinel errors map to 404 (absent resources) or 400 (conflict-like
// business rules) in the handlers. Messages are the client-facing text.
var (
	ErrToteNotFound       = errors.New("Tote not found")
	ErrItemNotFound       = errors.New("Item not found")
	ErrPhotoNotFound      = errors.New("Photo not found")
	ErrPhotoFileNotFound  = errors.New("Photo file not found")
	ErrMetadataNotFound   = errors.New("Metadata entry not found")
	ErrTargetToteNotFound = errors.New("Target tote not found")
	ErrNoTotesFound       = errors.New("No totes found for the given IDs")
	ErrSameTote           = errors.New("Item is already in this tote")
	ErrPhotoLimitReached  = errors.New("Maximum 3 photos per item reached")
	ErrNoFieldsToUpdate   = errors.New("No fields to update")
)

// ValidationError carries a client-fixable message built at runtime
// (unsupported MIME type, oversized file and the like). Always a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrToteNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrPhotoNotFound) ||
		errors.Is(err, ErrPhotoFileNotFound) ||
		errors.Is(err, ErrMetadataNotFound) ||
		errors.Is(err, ErrTargetToteNotFound) ||
		errors.Is(err, ErrNoTotesFound)
}

func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) ||
		errors.Is(err, ErrSameTote) ||
		errors.Is(err, ErrPhotoLimitReached) ||
		errors.Is(err, ErrNoFieldsToUpdate)
}
