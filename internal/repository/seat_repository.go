package repository // repository defines data access for airplane seats

import (
	"context"
	"database/sql"
	"errors"

	"github.com/andesair/checkin-api/internal/model"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// SeatRepo provides methods to work with seats in the database.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// ListByAirplane retrieves all seats of an airplane ordered by row
// then column.  The ordering is cosmetic; the allocation engine sorts
// its own working sets.
func (r *SeatRepo) ListByAirplane(ctx context.Context, airplaneID uint64) ([]model.Seat, error) {
	const q = `SELECT seat_id, seat_column, seat_row, seat_type_id, airplane_id
	           FROM seat
	           WHERE airplane_id = ?
	           ORDER BY seat_row, seat_column`
	rows, err := r.db.QueryContext(ctx, q, airplaneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.Column, &s.Row, &s.SeatTypeID, &s.AirplaneID); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByPosition retrieves the seat at (row, column) on an airplane.
// Row and column together uniquely identify a seat within one
// airplane.
func (r *SeatRepo) GetByPosition(ctx context.Context, row uint32, column string, airplaneID uint64) (model.Seat, error) {
	const q = `SELECT seat_id, seat_column, seat_row, seat_type_id, airplane_id
	           FROM seat
	           WHERE seat_row = ? AND seat_column = ? AND airplane_id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, row, column, airplaneID).
		Scan(&s.ID, &s.Column, &s.Row, &s.SeatTypeID, &s.AirplaneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Seat{}, ErrSeatNotFound
		}
		return model.Seat{}, err
	}
	return s, nil
}
