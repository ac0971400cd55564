package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicate marks a unique constraint violation (username/email).
	ErrDuplicate = errors.New("duplicate value")
	// ErrReferenced marks a foreign key violation: either a write pointing
	// at a missing row, or a hard delete of a row something still references.
	ErrReferenced = errors.New("row is referenced")
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// ClassifyError maps Postgres constraint errors onto the package sentinels
// so handlers can translate them without inspecting driver internals.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenced, pgErr.ConstraintName)
		}
	}
	return err
}
