package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "errors"                 // sentinel comparison for session lookups
    "net/http"               // HTTP status codes for responses
    "strconv"                // claim string fallback parsing
    "strings"                // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers

    "github.com/skyops/airline-backoffice/internal/repository" // session persistence
)

// SessionAuth returns an Echo middleware that validates a Bearer access
// token and then resolves the server-held session named by its `sid`
// claim.  The JWT alone is not enough to pass: a revoked or expired
// session row rejects the request immediately, which is what makes
// logout take effect before the token itself expires.  On success the
// session row's values are injected into the request context under
// "user_id" (uint64), "role" (string) and "session_id" (uint64).
func SessionAuth(secret string, sessions *repository.SessionRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            claims, ok := bearerClaims(c, secret)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            sid, ok := claimUint64(claims, "sid")
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            sess, err := sessions.GetActiveByID(c.Request().Context(), sid)
            if err != nil {
                if errors.Is(err, repository.ErrSessionNotFound) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
                }
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
            }

            // The row is authoritative; the claims are only the pointer to it.
            c.Set("user_id", sess.UserID)
            c.Set("role", sess.Role)
            c.Set("session_id", sess.ID)
            return next(c)
        }
    }
}

// bearerClaims parses the Authorization header and returns the token's
// claims when the header carries a valid HS256 bearer token.
func bearerClaims(c echo.Context, secret string) (jwt.MapClaims, bool) {
    auth := c.Request().Header.Get("Authorization")
    if !strings.HasPrefix(auth, "Bearer ") {
        return nil, false
    }
    raw := strings.TrimPrefix(auth, "Bearer ")

    // The callback pins the signing method; tokens signed any other way
    // are rejected before the signature is even checked.
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, echo.ErrUnauthorized
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return nil, false
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return nil, false
    }
    return claims, true
}

// claimUint64 reads a numeric claim.  JSON numbers decode as float64;
// some issuers encode numeric strings, so both are accepted.
func claimUint64(claims jwt.MapClaims, key string) (uint64, bool) {
    switch v := claims[key].(type) {
    case float64:
        return uint64(v), true
    case string:
        if n, err := strconv.ParseUint(v, 10, 64); err == nil {
            return n, true
        }
    }
    return 0, false
}
