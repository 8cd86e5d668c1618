package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Constraint failures the service layer needs to tell apart from
// infrastructure errors
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// wrap annotates err with the operation name and, for SQLite constraint
// failures, with the matching sentinel so callers can use errors.Is.
func wrap(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%s: %w: %w", op, ErrUniqueViolation, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: %w: %w", op, ErrForeignKeyViolation, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
