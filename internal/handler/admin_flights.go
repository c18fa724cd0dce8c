package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyops/airline-backoffice/internal/model"
	"github.com/skyops/airline-backoffice/internal/repository"
)

// departureLayout is the DB text format for departure timestamps. The
// search path matches departures by substring, so the stored shape has
// to stay stable.
const departureLayout = "2006-01-02 15:04:05"

// ListFlights handles GET /admin/flights and returns every active flight.
func (h *AdminHandler) ListFlights(c echo.Context) error {
	items, err := h.FlightRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateFlight handles POST /admin/flights. It validates the payload,
// inserts the flight and returns the stored row including DB defaults.
func (h *AdminHandler) CreateFlight(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		FlightNumber   string  `json:"flight_number"`
		Destination    string  `json:"destination"`
		Departure      string  `json:"departure"`
		Price          float64 `json:"price"`
		SeatsAvailable int     `json:"seats_available"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	number := strings.TrimSpace(body.FlightNumber)
	destination := strings.TrimSpace(body.Destination)
	departure := strings.TrimSpace(body.Departure)
	if number == "" || destination == "" || departure == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "flight_number, destination and departure are required"})
	}
	if _, err := time.Parse(departureLayout, departure); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid departure format, want YYYY-MM-DD HH:MM:SS"})
	}
	if body.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
	}
	if body.SeatsAvailable < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_available must not be negative"})
	}

	f := &model.Flight{
		FlightNumber:   number,
		Destination:    destination,
		Departure:      departure,
		Price:          body.Price,
		SeatsAvailable: body.SeatsAvailable,
	}
	if err := h.FlightRepo.Create(c.Request().Context(), f); err != nil {
		if errors.Is(err, repository.ErrFlightNumberExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "flight number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create flight"})
	}
	_ = h.LogRepo.Insert(c.Request().Context(), adminID, "Created Flight", fmt.Sprintf("Flight: %s to %s", f.FlightNumber, f.Destination))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Flight added successfully!",
		"flight":  f,
	})
}

// UpdateFlight handles PUT /admin/flights/:id. Absent fields keep their
// current values; a payload that changes nothing is reported as a conflict.
func (h *AdminHandler) UpdateFlight(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.FlightRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load flight"})
	}

	var body struct {
		Destination    *string  `json:"destination"`
		Departure      *string  `json:"departure"`
		Price          *float64 `json:"price"`
		SeatsAvailable *int     `json:"seats_available"`
		Status         *string  `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	upd := *cur
	if body.Destination != nil && strings.TrimSpace(*body.Destination) != "" {
		upd.Destination = strings.TrimSpace(*body.Destination)
	}
	if body.Departure != nil && strings.TrimSpace(*body.Departure) != "" {
		dep := strings.TrimSpace(*body.Departure)
		if _, err := time.Parse(departureLayout, dep); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid departure format, want YYYY-MM-DD HH:MM:SS"})
		}
		upd.Departure = dep
	}
	if body.Price != nil {
		if *body.Price <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
		}
		upd.Price = *body.Price
	}
	if body.SeatsAvailable != nil {
		if *body.SeatsAvailable < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_available must not be negative"})
		}
		upd.SeatsAvailable = *body.SeatsAvailable
	}
	if body.Status != nil && strings.TrimSpace(*body.Status) != "" {
		upd.Status = strings.TrimSpace(*body.Status)
	}

	if err := h.FlightRepo.Update(c.Request().Context(), &upd); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		if errors.Is(err, repository.ErrNoChange) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "flight already has these parameters"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	_ = h.LogRepo.Insert(c.Request().Context(), adminID, "Updated Flight", fmt.Sprintf("Flight: %s", cur.FlightNumber))

	fresh, err := h.FlightRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load flight"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// ArchiveFlight handles POST /admin/flights/:id/archive. The row moves
// into archived_flights and stops showing up in listings and search.
// Flights with booked passengers cannot be archived.
func (h *AdminHandler) ArchiveFlight(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.FlightRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load flight"})
	}
	if err := h.FlightRepo.ArchiveByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "flight has booked passengers"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "archive failed"})
	}
	_ = h.LogRepo.Insert(c.Request().Context(), adminID, "Archived Flight", fmt.Sprintf("Flight: %s to %s", cur.FlightNumber, cur.Destination))
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Flight archived successfully!",
		"flight_id": id,
	})
}

// ListArchivedFlights handles GET /admin/flights/archived.
func (h *AdminHandler) ListArchivedFlights(c echo.Context) error {
	items, err := h.FlightRepo.ListArchived(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
