package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// unique_violation, per the postgres error code table.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a postgres duplicate-key error,
// so repositories can surface it as a domain sentinel instead of a driver
// error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}
