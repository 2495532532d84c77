package allocation

import (
	"errors"

	"github.com/andesair/checkin-api/internal/model"
)

// ErrSeatTypeMismatch is returned when the requested seat belongs to
// a different cabin class than the boarding pass.  Handlers translate
// it into an HTTP 400 response.
var ErrSeatTypeMismatch = errors.New("seat type mismatch")

// ErrSeatTaken is returned when the requested seat is already
// referenced by another boarding pass on the flight.  Handlers
// translate it into an HTTP 400 response.
var ErrSeatTaken = errors.New("seat already taken")

// ValidateManual checks an explicit passenger-to-seat request outside
// the bulk flow.  Assigned must hold every boarding pass of the
// flight that currently references a seat; taken status is derived
// from that committed state, never from a bulk run's pool, so the
// check is always consistent with the latest assignments.
func ValidateManual(pass model.BoardingPass, seat model.Seat, assigned []model.BoardingPass) error {
	if seat.SeatTypeID != pass.SeatTypeID {
		return ErrSeatTypeMismatch
	}
	for _, bp := range assigned {
		if bp.SeatID != nil && *bp.SeatID == seat.ID {
			return ErrSeatTaken
		}
	}
	return nil
}
