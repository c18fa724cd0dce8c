// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that an operation cannot proceed
// because of the current row state (booking a flight whose seats are
// exhausted, archiving a flight that still has passengers), while the
// per-entity not-found and already-exists sentinels live next to the
// repository that owns them.
package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrConflict is returned when an update or move cannot be performed
// because of conflicting state. Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")

// isUniqueViolation reports whether err is a SQLite uniqueness failure,
// either on a UNIQUE column or on an explicit primary key insert.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
