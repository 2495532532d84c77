// Package repository defines data access for flights, seats, boarding
// passes and agent accounts.  Sentinel errors declared here and in the
// individual repository files let handlers distinguish failure
// scenarios: not-found lookups map to HTTP 404 while ErrSeatConflict
// signals that a seat claim lost against a concurrent assignment and
// maps to HTTP 400 ("seat already taken").
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrSeatConflict is returned by BoardingPassRepo.ClaimSeat when the
// conditional write affected no row: either the boarding pass already
// holds a seat or the requested seat was taken by another boarding
// pass on the flight in the meantime.  Bulk allocation skips the pass
// and leaves it to a later re-run; the manual path reports the seat
// as taken.
var ErrSeatConflict = errors.New("seat conflict")

// isDuplicateKey reports whether err is a MySQL duplicate-key error
// (1062), the signal that a unique constraint rejected a write.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
