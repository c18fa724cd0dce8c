package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Dashboard handles GET /admin/dashboard. It aggregates the entity
// counts, the ledger total and the full booking overview into one
// payload, which is everything the back office landing view needs.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	flights, err := h.FlightRepo.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	passengers, err := h.PassengerRepo.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	users, err := h.UserRepo.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	promotions, err := h.PromotionRepo.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	revenue, err := h.TransactionRepo.TotalRevenue(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	bookings, err := h.PassengerRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"flights":    flights,
		"passengers": passengers,
		"users":      users,
		"promotions": promotions,
		"revenue":    revenue,
		"bookings":   bookings,
	})
}
