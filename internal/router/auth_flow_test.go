package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginAndMe(t *testing.T) {
	ts := newTestServer(t)

	out := ts.loginAs(t, "admin", "admin123")
	assert.Equal(t, "Admin logged in successfully!", out.Message)
	assert.Equal(t, uint64(1), out.User.ID)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, "admin", out.User.Role)
	assert.NotEmpty(t, out.Access.Token)
	assert.Len(t, out.Session.Token, 96)

	rec := ts.request(t, http.MethodGet, "/me", out.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		UserID uint64 `json:"user_id"`
		Role   string `json:"role"`
	}
	decode(t, rec, &me)
	assert.Equal(t, uint64(1), me.UserID)
	assert.Equal(t, "admin", me.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/login", "", echo.Map{"username": "admin", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password!", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPost, "/login", "", echo.Map{"username": "ghost", "password": "whatever"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password!", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPost, "/login", "", echo.Map{"username": "", "password": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "username/password required", errorMessage(t, rec))
}

func TestRegisterAndMe(t *testing.T) {
	ts := newTestServer(t)

	out := ts.registerUser(t, "alice")
	assert.Equal(t, "User registered successfully!", out.Message)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "user", out.User.Role)
	assert.NotZero(t, out.User.ID)

	rec := ts.request(t, http.MethodGet, "/me", out.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		UserID uint64 `json:"user_id"`
		Role   string `json:"role"`
	}
	decode(t, rec, &me)
	assert.Equal(t, out.User.ID, me.UserID)
	assert.Equal(t, "user", me.Role)
}

func TestRegisterConflicts(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "bob")

	rec := ts.request(t, http.MethodPost, "/register", "", echo.Map{
		"username": "bob", "password": "other", "email": "second@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "username already exists", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPost, "/register", "", echo.Map{
		"username": "bob2", "password": "other", "email": "bob@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email already exists", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPost, "/register", "", echo.Map{
		"username": "carl", "password": "other",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "username/password/email required", errorMessage(t, rec))
}

// A user account named like the seeded admin is legal; the admin table
// is consulted first, and a failed admin password still falls through
// to the user table.
func TestLoginAdminNameCollision(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "admin")

	out := ts.loginAs(t, "admin", "admin123")
	assert.Equal(t, "Admin logged in successfully!", out.Message)
	assert.Equal(t, "admin", out.User.Role)

	out = ts.loginAs(t, "admin", "pass123")
	assert.Equal(t, "User logged in successfully!", out.Message)
	assert.Equal(t, "user", out.User.Role)
}

func TestRefreshAccess(t *testing.T) {
	ts := newTestServer(t)
	out := ts.registerUser(t, "carol")

	rec := ts.request(t, http.MethodPost, "/refresh", "", echo.Map{"session_token": out.Session.Token})
	require.Equal(t, http.StatusOK, rec.Code)
	var ref struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	decode(t, rec, &ref)
	require.NotEmpty(t, ref.Access.Token)

	rec = ts.request(t, http.MethodGet, "/me", ref.Access.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodPost, "/refresh", "", echo.Map{"session_token": "bogus"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid session", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPost, "/refresh", "", echo.Map{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "session_token required", errorMessage(t, rec))
}

func TestLogoutRevokesSession(t *testing.T) {
	ts := newTestServer(t)
	out := ts.registerUser(t, "dave")

	rec := ts.request(t, http.MethodGet, "/logout", out.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Message string `json:"message"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "You have been logged out.", body.Message)

	// The access token still carries a valid signature, but its session
	// row is gone, so every protected route rejects it.
	rec = ts.request(t, http.MethodGet, "/me", out.Access.Token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid session", errorMessage(t, rec))

	// The session token cannot mint new access tokens either.
	rec = ts.request(t, http.MethodPost, "/refresh", "", echo.Map{"session_token": out.Session.Token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	ts := newTestServer(t)
	first := ts.registerUser(t, "erin")
	second := ts.loginAs(t, "erin", "pass123")

	rec := ts.request(t, http.MethodGet, "/logout?all=1", second.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodGet, "/me", first.Access.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = ts.request(t, http.MethodGet, "/me", second.Access.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginPage(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/login", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hint struct {
		Message string `json:"message"`
	}
	decode(t, rec, &hint)
	assert.Equal(t, "POST username and password to this path to log in.", hint.Message)

	out := ts.loginAs(t, "admin", "admin123")
	rec = ts.request(t, http.MethodGet, "/login", out.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var greet struct {
		Message string `json:"message"`
		UserID  uint64 `json:"user_id"`
		Role    string `json:"role"`
	}
	decode(t, rec, &greet)
	assert.Equal(t, "Already logged in.", greet.Message)
	assert.Equal(t, uint64(1), greet.UserID)
	assert.Equal(t, "admin", greet.Role)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/me", "/logout", "/dashboard", "/my_notifications"} {
		rec := ts.request(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "invalid token", errorMessage(t, rec), path)
	}

	rec := ts.request(t, http.MethodGet, "/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", errorMessage(t, rec))
}
