package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/skyops/airline-backoffice/internal/handler"    // admin handlers
	"github.com/skyops/airline-backoffice/internal/middleware" // session + role middlewares
	"github.com/skyops/airline-backoffice/internal/repository" // session repository for the auth middleware
)

// RegisterAdmin registers admin-scoped endpoints under /admin.
// All routes require a resolvable session and the admin role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string, sessions *repository.SessionRepo) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/admin",
		middleware.SessionAuth(jwtSecret, sessions),
		middleware.RequireRole("admin"),
	)

	// ---- Dashboard ----
	g.GET("/dashboard", a.Dashboard)

	// ---- Promotions ----
	g.GET("/promotions", a.ListPromotions)
	g.POST("/promotions", a.AddPromotion)

	// ---- Logs ----
	g.GET("/logs", a.ViewLogs)

	// ---- Flights ----
	g.GET("/flights", a.ListFlights)
	g.POST("/flights", a.CreateFlight)
	// The static /flights/archived segment is registered alongside the
	// parameterised routes; Echo resolves static paths first.
	g.GET("/flights/archived", a.ListArchivedFlights)
	g.PUT("/flights/:id", a.UpdateFlight)
	g.POST("/flights/:id/archive", a.ArchiveFlight)
}
