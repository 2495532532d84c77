package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andesair/checkin-api/internal/allocation"
	"github.com/andesair/checkin-api/internal/queue"
	"github.com/andesair/checkin-api/internal/repository"
)

// CheckinService performs the bulk seat assignment for a flight: it
// loads the flight, its boarding passes grouped by purchase and the
// airplane's seat map, runs the allocation engine and persists every
// chosen seat with an atomic claim.  The whole operation is
// idempotent, so it is wrapped in the standard retry policy.
type CheckinService struct {
	flights   FlightStore
	seats     SeatStore
	passes    BoardingPassStore
	publisher EventPublisher

	retryBase time.Duration
}

// NewCheckinService constructs a CheckinService.  The publisher may
// be nil to disable event emission.
func NewCheckinService(flights FlightStore, seats SeatStore, passes BoardingPassStore, publisher EventPublisher) *CheckinService {
	if flights == nil || seats == nil || passes == nil {
		panic("nil store passed to NewCheckinService")
	}
	return &CheckinService{
		flights:   flights,
		seats:     seats,
		passes:    passes,
		publisher: publisher,
		retryBase: time.Second,
	}
}

// PerformCheckin runs the bulk allocation for the flight and returns
// the flight with all passengers and their (possibly still null) seat
// assignments.  Passes the allocator could not seat stay unassigned;
// callers detect partial allocation from the response body.
func (s *CheckinService) PerformCheckin(ctx context.Context, flightID uint64) (FlightResponse, error) {
	var resp FlightResponse
	err := withRetry(ctx, s.retryBase, func() error {
		var opErr error
		resp, opErr = s.performCheckin(ctx, flightID)
		return opErr
	})
	return resp, err
}

func (s *CheckinService) performCheckin(ctx context.Context, flightID uint64) (FlightResponse, error) {
	slog.Info("performing check-in", "flight_id", flightID)

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return FlightResponse{}, err
	}

	passes, err := s.passes.ListByFlightOrderedByPurchase(ctx, flightID)
	if err != nil {
		return FlightResponse{}, err
	}
	seats, err := s.seats.ListByAirplane(ctx, flight.AirplaneID)
	if err != nil {
		return FlightResponse{}, err
	}

	plan := allocation.Allocate(passes, seats)

	committed := 0
	for _, a := range plan {
		if err := s.passes.ClaimSeat(ctx, a.BoardingPassID, flightID, a.SeatID); err != nil {
			if errors.Is(err, repository.ErrSeatConflict) {
				// Lost against a concurrent assignment; the pass stays
				// unassigned and a re-run will pick it up.
				slog.Warn("seat claim conflict, skipping pass",
					"flight_id", flightID, "boarding_pass_id", a.BoardingPassID, "seat_id", a.SeatID)
				continue
			}
			return FlightResponse{}, err
		}
		committed++
	}

	updated, err := s.passes.ListByFlight(ctx, flightID)
	if err != nil {
		return FlightResponse{}, err
	}

	if committed > 0 && s.publisher != nil {
		unassigned := 0
		for _, bp := range updated {
			if !bp.Assigned() {
				unassigned++
			}
		}
		ev := queue.CheckinCompletedEvent{
			FlightID:       flight.ID,
			AirplaneID:     flight.AirplaneID,
			TakeoffAirport: flight.TakeoffAirport,
			LandingAirport: flight.LandingAirport,
			Assigned:       committed,
			Unassigned:     unassigned,
			CompletedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishCheckinCompleted(ctx, ev); err != nil {
			slog.Warn("failed to publish check-in event", "flight_id", flightID, "err", err)
		}
	}

	slog.Info("check-in finished", "flight_id", flightID, "newly_assigned", committed)
	return mapFlightResponse(flight, updated), nil
}
