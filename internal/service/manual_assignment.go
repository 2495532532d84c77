package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andesair/checkin-api/internal/allocation"
	"github.com/andesair/checkin-api/internal/repository"
)

// ManualAssignmentService executes an explicit passenger-to-seat
// request outside the bulk flow.  It never consults a bulk run's seat
// pool: taken status is re-derived from committed boarding-pass state
// on every call, and the final claim is the same atomic conditional
// write the bulk path uses.
type ManualAssignmentService struct {
	flights FlightStore
	seats   SeatStore
	passes  BoardingPassStore

	retryBase time.Duration
}

// NewManualAssignmentService constructs a ManualAssignmentService.
func NewManualAssignmentService(flights FlightStore, seats SeatStore, passes BoardingPassStore) *ManualAssignmentService {
	if flights == nil || seats == nil || passes == nil {
		panic("nil store passed to NewManualAssignmentService")
	}
	return &ManualAssignmentService{
		flights:   flights,
		seats:     seats,
		passes:    passes,
		retryBase: time.Second,
	}
}

// AssignSeat assigns the seat at (row, column) to the passenger's
// boarding pass on the flight.  It fails with a not-found error when
// the boarding pass or seat does not exist, and with
// allocation.ErrSeatTypeMismatch or allocation.ErrSeatTaken when the
// request is invalid against current state.
func (s *ManualAssignmentService) AssignSeat(ctx context.Context, flightID, passengerID uint64, row uint32, column string) (PassengerResponse, error) {
	var resp PassengerResponse
	err := withRetry(ctx, s.retryBase, func() error {
		var opErr error
		resp, opErr = s.assignSeat(ctx, flightID, passengerID, row, column)
		return opErr
	})
	return resp, err
}

func (s *ManualAssignmentService) assignSeat(ctx context.Context, flightID, passengerID uint64, row uint32, column string) (PassengerResponse, error) {
	slog.Info("assigning seat manually",
		"flight_id", flightID, "passenger_id", passengerID, "row", row, "column", column)

	pass, err := s.passes.GetByFlightAndPassenger(ctx, flightID, passengerID)
	if err != nil {
		return PassengerResponse{}, err
	}

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return PassengerResponse{}, err
	}

	seat, err := s.seats.GetByPosition(ctx, row, column, flight.AirplaneID)
	if err != nil {
		return PassengerResponse{}, err
	}

	assigned, err := s.passes.ListAssignedByFlight(ctx, flightID)
	if err != nil {
		return PassengerResponse{}, err
	}
	if err := allocation.ValidateManual(pass, seat, assigned); err != nil {
		return PassengerResponse{}, err
	}

	if err := s.passes.ClaimSeat(ctx, pass.ID, flightID, seat.ID); err != nil {
		if errors.Is(err, repository.ErrSeatConflict) {
			// The validation raced a concurrent assignment; report the
			// seat as taken rather than leaking the conflict sentinel.
			return PassengerResponse{}, allocation.ErrSeatTaken
		}
		return PassengerResponse{}, err
	}

	slog.Info("seat assigned",
		"flight_id", flightID, "passenger_id", passengerID, "seat_id", seat.ID)
	return mapPassengerResponse(pass, seat), nil
}
