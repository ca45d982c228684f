package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation wraps every rejected input; the message lists the
	// individual problems.
	ErrValidation = errors.New("validation failed")
	// ErrNotArchived guards scenario deletion.
	ErrNotArchived = errors.New("scenario must be archived before deletion (use --force to override)")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// formatValidationErrors joins a list of problems into one ErrValidation.
func formatValidationErrors(errs []error) error {
	if len(errs) == 1 {
		return validationError(errs[0])
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("%w (%d errors):\n  - %s", ErrValidation, len(errs), strings.Join(msgs, "\n  - "))
}
