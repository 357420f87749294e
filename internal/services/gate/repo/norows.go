package repo

import (
	stdsql "database/sql"
	"errors"
	"strings"
)

// isNoRows matches both database/sql and pgx "no rows" failures without
// importing a driver in the repo layer
func isNoRows(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, stdsql.ErrNoRows) {
		return true
	}
	return strings.Contains(err.Error(), "no rows")
}
