package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a row does not exist
var ErrNotFound = errors.New("record not found")

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (error code 23505)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
