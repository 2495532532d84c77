package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/andesair/checkin-api/internal/allocation"
	"github.com/andesair/checkin-api/internal/config"
	"github.com/andesair/checkin-api/internal/middleware"
	"github.com/andesair/checkin-api/internal/repository"
	"github.com/andesair/checkin-api/internal/service"
)

// FlightHandler exposes the check-in endpoints: the bulk seat
// allocation for a flight and the manual single-seat assignment.
type FlightHandler struct {
	Checkin  *service.CheckinService
	Manual   *service.ManualAssignmentService
	CacheCfg config.CacheConfig
	Redis    *redis.Client
}

func NewFlightHandler(checkin *service.CheckinService, manual *service.ManualAssignmentService, cacheCfg config.CacheConfig, rdb *redis.Client) *FlightHandler {
	return &FlightHandler{Checkin: checkin, Manual: manual, CacheCfg: cacheCfg, Redis: rdb}
}

// Responses use the envelope existing clients already parse:
// {"code":200,"data":...} on success, {"code":...,"error_code":...,
// "message":...} on failure.
func dataEnvelope(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, echo.Map{"code": http.StatusOK, "data": data})
}

func errEnvelope(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, echo.Map{"code": status, "error_code": code, "message": msg})
}

// CheckinFlight handles GET /v1/flights/:id/passengers. It runs the
// seat allocation for every unseated boarding pass on the flight and
// returns the full passenger list. Re-running is a no-op for already
// seated passengers, so the route is safe to cache and poll.
func (h *FlightHandler) CheckinFlight(c echo.Context) error {
	flightID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || flightID == 0 {
		return errEnvelope(c, http.StatusBadRequest, "BAD_REQUEST", "flight id must be a positive integer")
	}

	resp, err := h.Checkin.PerformCheckin(c.Request().Context(), flightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return errEnvelope(c, http.StatusNotFound, "NOT_FOUND", "flight not found")
		}
		slog.Error("bulk check-in failed", "flight_id", flightID, "error", err)
		return errEnvelope(c, http.StatusInternalServerError, "INTERNAL", "check-in failed")
	}
	return dataEnvelope(c, resp)
}

// AssignSeat handles
// PUT /v1/flights/:id/passengers/:passengerId/seat?seatRow=N&seatColumn=C.
// The seat is identified by its physical position on the airplane.
func (h *FlightHandler) AssignSeat(c echo.Context) error {
	flightID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || flightID == 0 {
		return errEnvelope(c, http.StatusBadRequest, "BAD_REQUEST", "flight id must be a positive integer")
	}
	passengerID, err := strconv.ParseUint(c.Param("passengerId"), 10, 64)
	if err != nil || passengerID == 0 {
		return errEnvelope(c, http.StatusBadRequest, "BAD_REQUEST", "passenger id must be a positive integer")
	}
	row, err := strconv.ParseUint(c.QueryParam("seatRow"), 10, 32)
	if err != nil || row == 0 {
		return errEnvelope(c, http.StatusBadRequest, "BAD_REQUEST", "seatRow must be a positive integer")
	}
	column := c.QueryParam("seatColumn")
	if len(column) != 1 || column[0] < 'A' || column[0] > 'Z' {
		return errEnvelope(c, http.StatusBadRequest, "BAD_REQUEST", "seatColumn must be a single letter A-Z")
	}

	resp, err := h.Manual.AssignSeat(c.Request().Context(), flightID, passengerID, uint32(row), column)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFlightNotFound):
			return errEnvelope(c, http.StatusNotFound, "NOT_FOUND", "flight not found")
		case errors.Is(err, repository.ErrBoardingPassNotFound):
			return errEnvelope(c, http.StatusNotFound, "NOT_FOUND", "passenger has no boarding pass on this flight")
		case errors.Is(err, repository.ErrSeatNotFound):
			return errEnvelope(c, http.StatusNotFound, "NOT_FOUND", "seat does not exist on this airplane")
		case errors.Is(err, allocation.ErrSeatTypeMismatch):
			return errEnvelope(c, http.StatusBadRequest, "SEAT_CLASS_MISMATCH", "seat class does not match the boarding pass")
		case errors.Is(err, allocation.ErrSeatTaken):
			return errEnvelope(c, http.StatusBadRequest, "SEAT_TAKEN", "seat is already assigned")
		}
		slog.Error("manual seat assignment failed",
			"flight_id", flightID, "passenger_id", passengerID, "error", err)
		return errEnvelope(c, http.StatusInternalServerError, "INTERNAL", "seat assignment failed")
	}

	// The flight's cached passenger list is stale now.
	middleware.InvalidateCache(c.Request().Context(), h.CacheCfg, h.Redis,
		"/v1/flights/"+c.Param("id")+"/passengers")

	return dataEnvelope(c, resp)
}
