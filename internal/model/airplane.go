package model

// Airplane describes an aircraft configuration.  Every flight is
// operated by exactly one airplane, and the airplane owns the seat
// map used during check-in.
//
// Fields:
//  ID   – primary key identifier.
//  Name – commercial model name (e.g. "AirbusA320").
type Airplane struct {
	ID   uint64 // airplane.airplane_id
	Name string // airplane.name
}

// Seat is a physical seat on an airplane.  A seat is immutable once
// created; its lifecycle is tied to the airplane configuration.  Row
// and column together uniquely identify a seat within one airplane.
//
// Fields:
//  ID         – primary key identifier.
//  Column     – single letter column label (A, B, C, ...).
//  Row        – row number, positive, counted from the nose.
//  SeatTypeID – cabin class of the seat (references seat_type).
//  AirplaneID – owning airplane.
type Seat struct {
	ID         uint64 // seat.seat_id
	Column     string // seat.seat_column (single letter)
	Row        uint32 // seat.seat_row
	SeatTypeID uint64 // seat.seat_type_id
	AirplaneID uint64 // seat.airplane_id
}

// SeatType maps a cabin class id to its display name.  The usual
// rows are 1=Business, 2=Premium Economy and 3=Economy, but the set
// is data-driven.
type SeatType struct {
	ID   uint64 // seat_type.seat_type_id
	Name string // seat_type.name
}
