package model

// Flight represents a scheduled flight operated by one airplane.
// Takeoff and landing instants are stored as Unix epoch seconds,
// matching the upstream reservation system feed.
//
// Fields:
//  ID              – primary key identifier.
//  TakeoffDateTime – departure instant (epoch seconds).
//  TakeoffAirport  – IATA code of the departure airport.
//  LandingDateTime – arrival instant (epoch seconds).
//  LandingAirport  – IATA code of the arrival airport.
//  AirplaneID      – airplane operating this flight.
type Flight struct {
	ID              uint64 // flight.flight_id
	TakeoffDateTime int64  // flight.takeoff_date_time
	TakeoffAirport  string // flight.takeoff_airport
	LandingDateTime int64  // flight.landing_date_time
	LandingAirport  string // flight.landing_airport
	AirplaneID      uint64 // flight.airplane_id
}

// BoardingPass is a passenger's claim to fly on a specific flight.
// It is created at ticket purchase with a requested seat class and no
// seat; check-in fills in the seat exactly once.  A nil SeatID means
// the pass is still unassigned.
//
// Fields:
//  ID          – primary key identifier.
//  PurchaseID  – purchase that bought this pass (travel party key).
//  PassengerID – passenger flying on this pass.
//  SeatTypeID  – requested cabin class; an assigned seat must match it.
//  SeatID      – assigned seat, nil while unassigned.
//  FlightID    – flight this pass belongs to.
//  Passenger   – hydrated passenger row when loaded with a join.
//  Seat        – hydrated seat row when loaded with a join.
type BoardingPass struct {
	ID          uint64  // boarding_pass.boarding_pass_id
	PurchaseID  uint64  // boarding_pass.purchase_id
	PassengerID uint64  // boarding_pass.passenger_id
	SeatTypeID  uint64  // boarding_pass.seat_type_id
	SeatID      *uint64 // boarding_pass.seat_id (nullable)
	FlightID    uint64  // boarding_pass.flight_id

	Passenger *Passenger // joined passenger, may be nil
	Seat      *Seat      // joined seat, may be nil
}

// Assigned reports whether the pass already has a seat.
func (bp *BoardingPass) Assigned() bool { return bp.SeatID != nil }
