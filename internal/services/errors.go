package services

import (
	"errors"

	apperrors "peilbuis/internal/errors"
)

// Survey service errors
var (
	ErrNoInput = errors.New("no input file given")
)

// classify maps pipeline failures onto the application error taxonomy.
// Errors that already carry a type are returned unchanged.
func classify(stage string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var missing *apperrors.MissingColumnError
	if errors.As(err, &missing) {
		return apperrors.NewValidationError(stage+" failed", err).
			WithContext("column", missing.Column)
	}

	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		return apperrors.NewParsingError(stage+" failed", err).
			WithContext("column", parseErr.Column).
			WithContext("line", parseErr.Line)
	}

	return apperrors.NewStorageError(stage+" failed", err)
}
