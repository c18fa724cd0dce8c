package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // sentinel comparisons with errors.Is
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/skyops/airline-backoffice/internal/config"     // app configuration
	"github.com/skyops/airline-backoffice/internal/repository" // DB repositories
	"github.com/skyops/airline-backoffice/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Admins   *repository.AdminRepo
	Users    *repository.UserRepo
	Sessions *repository.SessionRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo, u *repository.UserRepo, s *repository.SessionRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a, Users: u, Sessions: s}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	SessionToken string `json:"session_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
type authResp struct {
	Message string    `json:"message"`
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Session tokenPart `json:"session"`
}

// LoginPage is the API equivalent of the login form render. Signed-in
// callers (identified by the optional session middleware) are told who
// they are; everyone else gets a usage hint.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if uid, err := getUserID(c); err == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Already logged in.",
			"user_id": uid,
			"role":    c.Get("role"),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "POST username and password to this path to log in."})
}

// Login: verify credentials against both account tables and open a session.
// Admins are checked first, so on a name collision across the two tables the
// admin match wins; a failed admin password still falls through to the user
// table before the request is rejected.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByUsername(ctx, req.Username)
	if err == nil && utils.VerifyPassword(a.PasswordHash, req.Password) {
		sess, err := utils.NewSessionToken(h.Cfg.SessionTTLHours)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
		}
		sid, err := h.Sessions.Create(ctx, a.ID, "admin", utils.HashSessionRaw(sess.Raw), sess.Exp)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
		}
		access, err := utils.NewAccessToken(h.Cfg.JWTSecret, a.ID, "admin", sid, h.Cfg.AccessTTLMin)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
		}
		return c.JSON(http.StatusOK, authResp{
			Message: "Admin logged in successfully!",
			User:    userPart{ID: a.ID, Username: a.Username, Role: "admin"},
			Access:  tokenPart{Token: access.Token, Expires: access.Exp},
			Session: tokenPart{Token: sess.Raw, Expires: sess.Exp}, // raw back to client
		})
	}
	if err != nil && !errors.Is(err, repository.ErrAdminNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password!"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password!"})
	}

	sess, err := utils.NewSessionToken(h.Cfg.SessionTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	sid, err := h.Sessions.Create(ctx, u.ID, u.Role, utils.HashSessionRaw(sess.Raw), sess.Exp)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, sid, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		Message: "User logged in successfully!",
		User:    userPart{ID: u.ID, Username: u.Username, Role: u.Role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Session: tokenPart{Token: sess.Raw, Expires: sess.Exp},
	})
}

// Register: create user and open a session immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password/email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Password, req.Email, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	sess, err := utils.NewSessionToken(h.Cfg.SessionTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	sid, err := h.Sessions.Create(ctx, uid, "user", utils.HashSessionRaw(sess.Raw), sess.Exp)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, "user", sid, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		Message: "User registered successfully!",
		User:    userPart{ID: uid, Username: req.Username, Role: "user"},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Session: tokenPart{Token: sess.Raw, Expires: sess.Exp},
	})
}

// RefreshAccess: validate a session token and return a new access token WITHOUT
// touching the session row. This lets a client obtain a fresh short-lived access
// token for as long as its session stays active.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.SessionToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_token required"})
	}
	raw := strings.TrimSpace(req.SessionToken)
	hash := utils.HashSessionRaw(raw)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Sessions.GetActiveByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// unknown, expired or revoked session token
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, s.UserID, s.Role, s.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	// Only return a new access token; the session row is left as it is
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout revokes the caller's server-held session, which immediately
// invalidates every access token naming it. With ?all=1 every active
// session of the account is revoked instead of just the current one.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, ok := c.Get("session_id").(uint64)
	if !ok || sid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if c.QueryParam("all") == "1" {
		uid, err := getUserID(c)
		role, _ := c.Get("role").(string)
		if err != nil || role == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		if err := h.Sessions.RevokeAllFor(ctx, uid, role); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "You have been logged out."})
	}

	if err := h.Sessions.Revoke(ctx, sid); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "You have been logged out."})
}

// Me: simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": c.Get("user_id"),
		"role":    c.Get("role"),
	})
}
