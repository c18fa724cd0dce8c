package router

import (
	"github.com/labstack/echo/v4"

	"github.com/skyops/airline-backoffice/internal/handler"
	"github.com/skyops/airline-backoffice/internal/middleware"
	"github.com/skyops/airline-backoffice/internal/repository"
)

// RegisterUser registers the signed-in booking surface.  All routes
// require a resolvable server-held session but no particular role, so
// both users and admins can book, redeem promotions and flag
// insurance.  The original form paths are kept at the root.
func RegisterUser(e *echo.Echo, h *handler.UserHandler, jwtSecret string, sessions *repository.SessionRepo) {
	g := e.Group(
		"",
		middleware.SessionAuth(jwtSecret, sessions),
	)
	// Bookings with staged-discount application.
	g.POST("/book_flight/:flight_id", h.BookFlight)
	// Validate a promotion code and stage its discount on the session.
	g.POST("/apply_promotion", h.ApplyPromotion)
	// Flag the passengers on a ticket as insured.  GET mirrors the
	// original link-style route.
	g.GET("/add_insurance/:ticket_id", h.AddInsurance)
	// The caller's bookings plus the currently staged discount.
	g.GET("/dashboard", h.Dashboard)
	// Notifications written by the booking event consumer.
	g.GET("/my_notifications", h.MyNotifications)
}
