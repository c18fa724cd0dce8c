package middleware

// identity.go provides the optional flavor of session resolution. Routes
// that are public but behave slightly differently for signed-in callers
// (the login usage page, for instance) use OptionalSession: a valid
// bearer token populates the context exactly like SessionAuth, while a
// missing or broken one just leaves the request anonymous.

import (
    "github.com/labstack/echo/v4"

    "github.com/skyops/airline-backoffice/internal/repository"
)

// OptionalSession resolves the caller's session when a valid bearer
// token is present and silently continues otherwise. It never rejects
// a request.
func OptionalSession(secret string, sessions *repository.SessionRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            claims, ok := bearerClaims(c, secret)
            if !ok {
                return next(c)
            }
            sid, ok := claimUint64(claims, "sid")
            if !ok {
                return next(c)
            }
            sess, err := sessions.GetActiveByID(c.Request().Context(), sid)
            if err != nil {
                return next(c)
            }
            c.Set("user_id", sess.UserID)
            c.Set("role", sess.Role)
            c.Set("session_id", sess.ID)
            return next(c)
        }
    }
}
