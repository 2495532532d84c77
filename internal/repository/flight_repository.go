package repository // repository defines data access for flights

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/andesair/checkin-api/internal/model"
)

// ErrFlightNotFound is returned when a flight lookup yields no rows.
var ErrFlightNotFound = errors.New("flight not found")

// FlightRepo provides methods to work with flights in the database.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// GetByID retrieves a flight by its id.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (model.Flight, error) {
	const q = `SELECT flight_id, takeoff_date_time, takeoff_airport, landing_date_time, landing_airport, airplane_id
	           FROM flight WHERE flight_id = ?`
	var f model.Flight
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&f.ID, &f.TakeoffDateTime, &f.TakeoffAirport, &f.LandingDateTime, &f.LandingAirport, &f.AirplaneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Flight{}, ErrFlightNotFound
		}
		return model.Flight{}, err
	}
	return f, nil
}
