package service

import (
	"errors"

	"lingo_progress/internal/model"
)

func internalError(err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
}

func unauthorizedError() *model.AppError {
	return model.NewAppError("UNAUTHORIZED", "No authenticated user.", "", model.ErrUnauthorized)
}

func insufficientHeartsError() *model.AppError {
	return model.NewAppError("INSUFFICIENT_HEARTS", "You have no hearts left. Practice or refill hearts to continue.", "", model.ErrInsufficientHearts)
}

// loadError keeps model.ErrNotFound as a NotFound AppError with the given code and
// reports anything else as internal.
func loadError(err error, code, message string) *model.AppError {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError(code, message, "", model.ErrNotFound)
	}
	return internalError(err)
}

// asAppError passes AppErrors through and wraps anything else as internal.
func asAppError(err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return internalError(err)
}
