// Package pgerr translates PostgreSQL failures into the application's error taxonomy.
package pgerr

import (
	"errors"
	"fmt"

	"mealorders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories react to.
const (
	CheckViolation      = "23514"
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Translate maps err to a typed error.
//
// A violated CHECK constraint means a write would have broken a storage invariant, such as
// stock dropping below zero; it becomes InvalidState. Duplicate keys are InvalidState as well,
// dangling references are NotFound. Everything else is wrapped with the operation name.
//
// Example:
//
//	if err := db.Save(&dto).Error; err != nil {
//	    return pgerr.Translate(err, "item "+id.String(), "update item")
//	}
func Translate(err error, subject, op string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CheckViolation:
			return errs.NewStateIsInvalidErrorWithCause(subject, "constraint "+pgErr.ConstraintName+" violated", err)
		case UniqueViolation:
			return errs.NewStateIsInvalidErrorWithCause(subject, "already exists", err)
		case ForeignKeyViolation:
			return errs.NewObjectNotFoundErrorWithCause("reference", subject, err)
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(op, subject)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// IsCheckViolation reports whether err came from a violated CHECK constraint.
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CheckViolation
}
