// Package queue defines message payloads exchanged over the message
// broker, plus the publisher and the background consumer for the
// checkin.completed queue.
package queue

// CheckinCompletedEvent is published after a bulk check-in run that
// assigned at least one seat.  It carries enough information for
// downstream consumers to log, notify or trigger analytics without
// querying the primary database.
type CheckinCompletedEvent struct {
	FlightID       uint64 `json:"flight_id"`
	AirplaneID     uint64 `json:"airplane_id"`
	TakeoffAirport string `json:"takeoff_airport"`
	LandingAirport string `json:"landing_airport"`
	Assigned       int    `json:"assigned"`
	Unassigned     int    `json:"unassigned"`
	CompletedAt    string `json:"completed_at"`
}
