package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyops/airline-backoffice/internal/repository"
)

// Dashboard handles GET /dashboard.  It returns the caller's bookings
// joined with flight details plus the discount currently staged on the
// session, which is what the signed-in landing view renders.
func (h *UserHandler) Dashboard(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sessionID, ok := c.Get("session_id").(uint64)
	if !ok || sessionID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	bookings, err := h.PassengerRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	sess, err := h.SessionRepo.GetActiveByID(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// revoked between middleware check and now
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  userID,
		"bookings": bookings,
		"discount": sess.Discount, // null when nothing is staged
	})
}

// MyNotifications handles GET /my_notifications and returns the
// caller's notification rows, newest first.  The rows are written by
// the booking event consumer.
func (h *UserHandler) MyNotifications(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.NotificationRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load notifications"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
