package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AddInsurance handles GET /add_insurance/:ticket_id.  The insurance
// flag is set on every passenger row carrying the ticket id, with no
// ownership or current-state check: repeating the call, or calling it
// with an unknown ticket, reports success just like the first call.
func (h *UserHandler) AddInsurance(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ticketID := strings.TrimSpace(c.Param("ticket_id"))
	if ticketID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
	}
	if err := h.PassengerRepo.AddInsurance(c.Request().Context(), ticketID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add insurance"})
	}
	_ = h.LogRepo.Insert(c.Request().Context(), userID, "Added Insurance", fmt.Sprintf("Ticket: %s", ticketID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Insurance added to your ticket."})
}
