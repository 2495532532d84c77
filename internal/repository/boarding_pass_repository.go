package repository // repository defines data access for boarding passes

import (
	"context"
	"database/sql"
	"errors"

	"github.com/andesair/checkin-api/internal/model"
)

// ErrBoardingPassNotFound is returned when a boarding pass lookup
// yields no rows.
var ErrBoardingPassNotFound = errors.New("boarding pass not found")

// BoardingPassRepo provides methods to work with boarding passes in
// the database.
type BoardingPassRepo struct {
	db *sql.DB
}

// NewBoardingPassRepo constructs a BoardingPassRepo with the given DB handle.
func NewBoardingPassRepo(db *sql.DB) *BoardingPassRepo {
	return &BoardingPassRepo{db: db}
}

const boardingPassJoinedCols = `bp.boarding_pass_id, bp.purchase_id, bp.passenger_id, bp.seat_type_id, bp.seat_id, bp.flight_id,
	       p.passenger_id, p.dni, p.name, p.age, p.country,
	       s.seat_id, s.seat_column, s.seat_row, s.seat_type_id, s.airplane_id`

// scanJoined reads one joined boarding-pass row.  The passenger join
// is expected to match; the seat join is null while unassigned.
func scanJoined(rows interface{ Scan(...any) error }) (model.BoardingPass, error) {
	var (
		bp       model.BoardingPass
		seatID   sql.NullInt64
		pID      sql.NullInt64
		pDNI     sql.NullString
		pName    sql.NullString
		pAge     sql.NullInt64
		pCountry sql.NullString
		sID      sql.NullInt64
		sCol     sql.NullString
		sRow     sql.NullInt64
		sType    sql.NullInt64
		sPlane   sql.NullInt64
	)
	err := rows.Scan(
		&bp.ID, &bp.PurchaseID, &bp.PassengerID, &bp.SeatTypeID, &seatID, &bp.FlightID,
		&pID, &pDNI, &pName, &pAge, &pCountry,
		&sID, &sCol, &sRow, &sType, &sPlane,
	)
	if err != nil {
		return model.BoardingPass{}, err
	}
	if seatID.Valid {
		v := uint64(seatID.Int64)
		bp.SeatID = &v
	}
	if pID.Valid {
		bp.Passenger = &model.Passenger{
			ID:      uint64(pID.Int64),
			DNI:     pDNI.String,
			Name:    pName.String,
			Age:     int(pAge.Int64),
			Country: pCountry.String,
		}
	}
	if sID.Valid {
		bp.Seat = &model.Seat{
			ID:         uint64(sID.Int64),
			Column:     sCol.String,
			Row:        uint32(sRow.Int64),
			SeatTypeID: uint64(sType.Int64),
			AirplaneID: uint64(sPlane.Int64),
		}
	}
	return bp, nil
}

// ListByFlight retrieves all boarding passes of a flight with their
// passenger and currently assigned seat hydrated.
func (r *BoardingPassRepo) ListByFlight(ctx context.Context, flightID uint64) ([]model.BoardingPass, error) {
	const q = `SELECT ` + boardingPassJoinedCols + `
	           FROM boarding_pass bp
	           LEFT JOIN passenger p ON p.passenger_id = bp.passenger_id
	           LEFT JOIN seat s ON s.seat_id = bp.seat_id
	           WHERE bp.flight_id = ?
	           ORDER BY bp.boarding_pass_id`
	return r.list(ctx, q, flightID)
}

// ListByFlightOrderedByPurchase retrieves the flight's boarding
// passes ordered by purchase id ascending, the stable order the bulk
// allocation consumes.
func (r *BoardingPassRepo) ListByFlightOrderedByPurchase(ctx context.Context, flightID uint64) ([]model.BoardingPass, error) {
	const q = `SELECT ` + boardingPassJoinedCols + `
	           FROM boarding_pass bp
	           LEFT JOIN passenger p ON p.passenger_id = bp.passenger_id
	           LEFT JOIN seat s ON s.seat_id = bp.seat_id
	           WHERE bp.flight_id = ?
	           ORDER BY bp.purchase_id, bp.boarding_pass_id`
	return r.list(ctx, q, flightID)
}

// ListAssignedByFlight retrieves only the boarding passes that
// currently reference a seat.  The manual assignment path derives
// "taken" status from this committed state on every call.
func (r *BoardingPassRepo) ListAssignedByFlight(ctx context.Context, flightID uint64) ([]model.BoardingPass, error) {
	const q = `SELECT ` + boardingPassJoinedCols + `
	           FROM boarding_pass bp
	           LEFT JOIN passenger p ON p.passenger_id = bp.passenger_id
	           LEFT JOIN seat s ON s.seat_id = bp.seat_id
	           WHERE bp.flight_id = ? AND bp.seat_id IS NOT NULL`
	return r.list(ctx, q, flightID)
}

func (r *BoardingPassRepo) list(ctx context.Context, q string, flightID uint64) ([]model.BoardingPass, error) {
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BoardingPass
	for rows.Next() {
		bp, err := scanJoined(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, bp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByFlightAndPassenger retrieves the boarding pass of one
// passenger on one flight.
func (r *BoardingPassRepo) GetByFlightAndPassenger(ctx context.Context, flightID, passengerID uint64) (model.BoardingPass, error) {
	const q = `SELECT ` + boardingPassJoinedCols + `
	           FROM boarding_pass bp
	           LEFT JOIN passenger p ON p.passenger_id = bp.passenger_id
	           LEFT JOIN seat s ON s.seat_id = bp.seat_id
	           WHERE bp.flight_id = ? AND bp.passenger_id = ?
	           LIMIT 1`
	bp, err := scanJoined(r.db.QueryRowContext(ctx, q, flightID, passengerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BoardingPass{}, ErrBoardingPassNotFound
		}
		return model.BoardingPass{}, err
	}
	return bp, nil
}

// ClaimSeat writes the seat onto the boarding pass with an atomic
// conditional update.  Two conditions guard the write: seat_id IS
// NULL on the locked target row keeps a pass from being seated twice,
// and the uniq_flight_seat UNIQUE KEY on (flight_id, seat_id) keeps a
// seat from being assigned twice.  The NOT EXISTS holder check is
// only a fast path: MySQL materializes the derived table from a
// statement-start snapshot, so two concurrent claims can both pass
// it, and the loser then hits the unique key instead.  Both outcomes
// map to ErrSeatConflict.
func (r *BoardingPassRepo) ClaimSeat(ctx context.Context, boardingPassID, flightID, seatID uint64) error {
	const q = `UPDATE boarding_pass
	           SET seat_id = ?
	           WHERE boarding_pass_id = ?
	             AND seat_id IS NULL
	             AND NOT EXISTS (
	                 SELECT 1 FROM (
	                     SELECT 1 FROM boarding_pass WHERE flight_id = ? AND seat_id = ?
	                 ) AS holder
	             )`
	res, err := r.db.ExecContext(ctx, q, seatID, boardingPassID, flightID, seatID)
	if err != nil {
		return claimError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatConflict
	}
	return nil
}

// claimError maps a duplicate-key rejection of the seat claim to
// ErrSeatConflict; anything else passes through.
func claimError(err error) error {
	if isDuplicateKey(err) {
		return ErrSeatConflict
	}
	return err
}
