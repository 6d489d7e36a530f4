package repository

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a sqlite uniqueness conflict.
// Conflicts are local, non-fatal events here: every caller resolves them by
// re-reading the existing row instead of surfacing an error.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func nullableString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
