// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines the public flight search. The route accepts GET and
// POST with the same three optional filters and requires no
// authentication; results pass through the best-effort Redis cache.

package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyops/airline-backoffice/internal/cache"
	"github.com/skyops/airline-backoffice/internal/repository"
)

// PublicHandler aggregates what the unauthenticated surface needs: the
// flight store and the search result cache in front of it.
type PublicHandler struct {
	FlightRepo *repository.FlightRepo // provides the filtered flight query
	Cache      *cache.SearchCache     // best-effort result cache, may be disabled
}

// SearchFlightsGet handles GET /recommend_flights with the filters as
// query parameters: destination, max_price, departure_date.
func (h *PublicHandler) SearchFlightsGet(c echo.Context) error {
	q := repository.FlightSearchQuery{
		Destination: strings.TrimSpace(c.QueryParam("destination")),
		Departure:   strings.TrimSpace(c.QueryParam("departure_date")),
	}
	if raw := strings.TrimSpace(c.QueryParam("max_price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
		}
		q.MaxPrice = &price
	}
	return h.searchFlights(c, q)
}

// SearchFlightsPost handles POST /recommend_flights with the filters in
// the JSON body. Both methods run the identical search.
func (h *PublicHandler) SearchFlightsPost(c echo.Context) error {
	var body struct {
		Destination   string   `json:"destination"`
		MaxPrice      *float64 `json:"max_price"`
		DepartureDate string   `json:"departure_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.MaxPrice != nil && *body.MaxPrice < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
	}
	q := repository.FlightSearchQuery{
		Destination: strings.TrimSpace(body.Destination),
		MaxPrice:    body.MaxPrice,
		Departure:   strings.TrimSpace(body.DepartureDate),
	}
	return h.searchFlights(c, q)
}

// searchFlights consults the cache, falls back to the store and renders
// the flash-style result message with the matching rows.
func (h *PublicHandler) searchFlights(c echo.Context, q repository.FlightSearchQuery) error {
	ctx := c.Request().Context()

	rows, hit := h.Cache.Get(ctx, q)
	if !hit {
		var err error
		rows, err = h.FlightRepo.Search(ctx, q)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		h.Cache.Set(ctx, q, rows)
	}

	if len(rows) == 0 {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "No flights match your criteria.",
			"flights": []repository.FlightRow{},
			"count":   0,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("%d flight(s) found!", len(rows)),
		"flights": rows,
		"count":   len(rows),
	})
}
