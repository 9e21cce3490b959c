package service

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Operation errors. All are recoverable at the request boundary: an
// operation that fails with one of these left no partial side effects.
var (
	ErrNotFound             = errors.New("entity not found")
	ErrForbidden            = errors.New("actor lacks rights over this entity")
	ErrInvalidTransition    = errors.New("current status does not permit this transition")
	ErrDeadlineExpired      = errors.New("application deadline has passed")
	ErrCapacityExceeded     = errors.New("project has no open seats")
	ErrDuplicateApplication = errors.New("an application for this project already exists")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("an account with this email already exists")
)

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// notFound translates the database's row-absence error into the service
// taxonomy and passes everything else through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
