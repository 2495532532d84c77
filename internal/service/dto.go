package service

import (
	"strconv"

	"github.com/andesair/checkin-api/internal/model"
)

// FlightResponse is the check-in view of a flight: the flight header
// plus every passenger with their current seat assignment.  A null
// seat_id marks a pass the allocator could not seat (partial
// allocation is a valid outcome, not an error).
type FlightResponse struct {
	FlightID        uint64              `json:"flight_id"`
	TakeoffDateTime int64               `json:"takeoff_date_time"`
	TakeoffAirport  string              `json:"takeoff_airport"`
	LandingDateTime int64               `json:"landing_date_time"`
	LandingAirport  string              `json:"landing_airport"`
	AirplaneID      uint64              `json:"airplane_id"`
	Passengers      []PassengerSeatInfo `json:"passengers"`
}

// PassengerSeatInfo is one passenger row inside FlightResponse.
type PassengerSeatInfo struct {
	PassengerID    uint64  `json:"passenger_id"`
	DNI            string  `json:"dni"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Country        string  `json:"country"`
	BoardingPassID uint64  `json:"boarding_pass_id"`
	PurchaseID     uint64  `json:"purchase_id"`
	SeatTypeID     uint64  `json:"seat_type_id"`
	SeatID         *uint64 `json:"seat_id"`
	SeatRow        string  `json:"seat_row,omitempty"`
	SeatColumn     string  `json:"seat_column,omitempty"`
}

// PassengerResponse is the summary returned by the manual assignment
// path: the passenger plus the seat just assigned.
type PassengerResponse struct {
	PassengerID uint64  `json:"passenger_id"`
	DNI         string  `json:"dni"`
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Country     string  `json:"country"`
	SeatTypeID  uint64  `json:"seat_type_id"`
	SeatID      *uint64 `json:"seat_id"`
	SeatRow     string  `json:"seat_row,omitempty"`
	SeatColumn  string  `json:"seat_column,omitempty"`
}

func mapFlightResponse(f model.Flight, passes []model.BoardingPass) FlightResponse {
	resp := FlightResponse{
		FlightID:        f.ID,
		TakeoffDateTime: f.TakeoffDateTime,
		TakeoffAirport:  f.TakeoffAirport,
		LandingDateTime: f.LandingDateTime,
		LandingAirport:  f.LandingAirport,
		AirplaneID:      f.AirplaneID,
		Passengers:      make([]PassengerSeatInfo, 0, len(passes)),
	}
	for _, bp := range passes {
		info := PassengerSeatInfo{
			PassengerID:    bp.PassengerID,
			BoardingPassID: bp.ID,
			PurchaseID:     bp.PurchaseID,
			SeatTypeID:     bp.SeatTypeID,
			SeatID:         bp.SeatID,
		}
		if bp.Passenger != nil {
			info.DNI = bp.Passenger.DNI
			info.Name = bp.Passenger.Name
			info.Age = bp.Passenger.Age
			info.Country = bp.Passenger.Country
		}
		if bp.Seat != nil {
			info.SeatRow = strconv.FormatUint(uint64(bp.Seat.Row), 10)
			info.SeatColumn = bp.Seat.Column
		}
		resp.Passengers = append(resp.Passengers, info)
	}
	return resp
}

func mapPassengerResponse(bp model.BoardingPass, seat model.Seat) PassengerResponse {
	resp := PassengerResponse{
		PassengerID: bp.PassengerID,
		SeatTypeID:  bp.SeatTypeID,
		SeatID:      &seat.ID,
		SeatRow:     strconv.FormatUint(uint64(seat.Row), 10),
		SeatColumn:  seat.Column,
	}
	if bp.Passenger != nil {
		resp.DNI = bp.Passenger.DNI
		resp.Name = bp.Passenger.Name
		resp.Age = bp.Passenger.Age
		resp.Country = bp.Passenger.Country
	}
	return resp
}
