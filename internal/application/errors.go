package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Handlers map these with errors.Is; the entity specific
// errors below wrap them.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflict")
)

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrProjectNotFound    = fmt.Errorf("project %w", ErrNotFound)
	ErrDrawingNotFound    = fmt.Errorf("drawing %w", ErrNotFound)
	ErrVersionNotFound    = fmt.Errorf("version %w", ErrNotFound)
	ErrAnnotationNotFound = fmt.Errorf("annotation %w", ErrNotFound)
	ErrWorkflowNotFound   = fmt.Errorf("workflow %w", ErrNotFound)
	ErrFileNotFound       = fmt.Errorf("file %w", ErrNotFound)

	ErrNoCurrentUser     = fmt.Errorf("current user %w", ErrNotFound)
	ErrWorkflowExists    = fmt.Errorf("%w: version already has a review workflow", ErrConflict)
	ErrEmptyContent      = fmt.Errorf("%w: content must not be empty", ErrValidation)
	ErrInvalidPosition   = fmt.Errorf("%w: position must be finite and non-negative", ErrValidation)
	ErrInvalidType       = fmt.Errorf("%w: unknown annotation type", ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("%w: unknown review status", ErrValidation)
	ErrInvalidFileURL    = fmt.Errorf("%w: file_url is required", ErrValidation)
	ErrInvalidInitStatus = fmt.Errorf("%w: workflows start in draft or in_review", ErrValidation)
	ErrEmptyFile         = fmt.Errorf("%w: file is empty", ErrValidation)
)

// lookupErr maps a missing record to notFound and wraps anything else.
func lookupErr(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("lookup failed: %w", err)
}
