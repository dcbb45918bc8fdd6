// Package services implements the business mutations behind the HTTP
// controllers. Every operation takes the resolved actor explicitly, checks
// authorization first, and reports failures as typed apperror values; only
// unexpected storage faults are wrapped as internal errors.
package services

import (
	"errors"

	"stagingcourse/apperror"
	"stagingcourse/models"
)

func requireActor(actor models.User) *apperror.Error {
	if actor.ID == 0 {
		return apperror.Unauthenticated("Unauthorized!")
	}
	return nil
}

func requireAdmin(actor models.User) *apperror.Error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return apperror.Forbidden("Access denied! Admin only.")
	}
	return nil
}

// asAppError recovers a typed business error that crossed a transaction
// boundary; anything else becomes an internal fault with the given message.
func asAppError(err error, fallback string) *apperror.Error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal(fallback, err)
}
