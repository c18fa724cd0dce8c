package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/skyops/airline-backoffice/internal/handler"    // import the handlers that implement business logic
	"github.com/skyops/airline-backoffice/internal/middleware" // import middleware for session authentication and role enforcement
	"github.com/skyops/airline-backoffice/internal/repository" // import repositories needed by the session middleware
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  The original form paths are kept: /login, /logout,
// /register and /refresh live at the root, not under an API prefix.  The
// limiter argument guards the credential endpoints against brute force; a
// nil limiter disables rate limiting (for example in tests or when Redis
// is absent).
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, sessions *repository.SessionRepo, limiter echo.MiddlewareFunc) {
	// Collect the middleware applied to credential submissions.  Every
	// endpoint in this set either verifies a password or exchanges a
	// token, which is exactly the surface worth rate limiting.
	creds := []echo.MiddlewareFunc{}
	if limiter != nil {
		creds = append(creds, limiter)
	}
	// Register a POST endpoint to handle user registration at /register.
	e.POST("/register", a.Register, creds...)
	// Register a POST endpoint to handle admin and user login at /login.
	e.POST("/login", a.Login, creds...)
	// Register a POST endpoint to issue a new access token for a stored
	// session without touching the session row.
	e.POST("/refresh", a.RefreshAccess, creds...)

	// The GET variant of /login mirrors the original form render.  The
	// optional session middleware lets the handler greet an already
	// signed-in caller instead of showing the usage hint.
	e.GET("/login", a.LoginPage, middleware.OptionalSession(jwtSecret, sessions))

	// Routes below require a resolvable server-held session.  The session
	// middleware validates the bearer token and rejects revoked or
	// expired sessions before the handler runs.
	auth := e.Group("", middleware.SessionAuth(jwtSecret, sessions))
	// Register a GET endpoint to log out; the caller's session row is
	// revoked so the access token dies with it.
	auth.GET("/logout", a.Logout)
	// Register a GET endpoint at /me that returns the authenticated
	// caller's identity and role.
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated flight search on the provided
// Echo instance.  The original route accepts both GET (query parameters) and
// POST (JSON body); no session or role middleware applies.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	// Search flights with filters in the query string.
	e.GET("/recommend_flights", p.SearchFlightsGet)
	// Search flights with filters in the JSON body.
	e.POST("/recommend_flights", p.SearchFlightsPost)
}
