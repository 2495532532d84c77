// Package service wires the allocation engine to persistence and
// messaging.  It owns the two check-in operations: the bulk
// assignment run triggered by fetching a flight's passengers, and the
// manual single-seat assignment.
package service

import (
	"context"

	"github.com/andesair/checkin-api/internal/model"
	"github.com/andesair/checkin-api/internal/queue"
)

// FlightStore resolves flights.  Implemented by repository.FlightRepo.
type FlightStore interface {
	GetByID(ctx context.Context, id uint64) (model.Flight, error)
}

// SeatStore resolves an airplane's seat map.  Implemented by
// repository.SeatRepo.
type SeatStore interface {
	ListByAirplane(ctx context.Context, airplaneID uint64) ([]model.Seat, error)
	GetByPosition(ctx context.Context, row uint32, column string, airplaneID uint64) (model.Seat, error)
}

// BoardingPassStore reads and claims boarding passes.  Implemented by
// repository.BoardingPassRepo.  ClaimSeat must be atomic: it assigns
// the seat only while the pass is unassigned and the seat is not
// referenced by any other pass on the flight, returning
// repository.ErrSeatConflict otherwise.
type BoardingPassStore interface {
	ListByFlight(ctx context.Context, flightID uint64) ([]model.BoardingPass, error)
	ListByFlightOrderedByPurchase(ctx context.Context, flightID uint64) ([]model.BoardingPass, error)
	ListAssignedByFlight(ctx context.Context, flightID uint64) ([]model.BoardingPass, error)
	GetByFlightAndPassenger(ctx context.Context, flightID, passengerID uint64) (model.BoardingPass, error)
	ClaimSeat(ctx context.Context, boardingPassID, flightID, seatID uint64) error
}

// EventPublisher emits domain events after a completed check-in run.
// A nil publisher disables messaging; publish failures never fail the
// request.
type EventPublisher interface {
	PublishCheckinCompleted(ctx context.Context, ev queue.CheckinCompletedEvent) error
}
