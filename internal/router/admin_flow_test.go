package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/airline-backoffice/internal/model"
	"github.com/skyops/airline-backoffice/internal/repository"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "pleb")

	paths := []string{"/admin/dashboard", "/admin/logs", "/admin/promotions", "/admin/flights", "/admin/flights/archived"}
	for _, path := range paths {
		rec := ts.request(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)

		rec = ts.request(t, http.MethodGet, path, user.Access.Token, nil)
		require.Equal(t, http.StatusForbidden, rec.Code, path)
		assert.Equal(t, "Unauthorized access!", errorMessage(t, rec), path)
		assert.NotContains(t, rec.Body.String(), "items", path)
	}
}

func TestCreateFlight(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")

	rec := ts.request(t, http.MethodPost, "/admin/flights", admin.Access.Token, echo.Map{
		"flight_number":   "FL950",
		"destination":     "Tokyo",
		"departure":       "2024-12-20 09:30:00",
		"price":           650.5,
		"seats_available": 30,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Message string       `json:"message"`
		Flight  model.Flight `json:"flight"`
	}
	decode(t, rec, &created)
	assert.Equal(t, "Flight added successfully!", created.Message)
	assert.Equal(t, uint64(4), created.Flight.ID) // three flights are seeded
	assert.Equal(t, "FL950", created.Flight.FlightNumber)
	assert.Equal(t, "On Time", created.Flight.Status)
	assert.NotEmpty(t, created.Flight.CreatedAt)

	rec = ts.request(t, http.MethodPost, "/admin/flights", admin.Access.Token, echo.Map{
		"flight_number":   "FL950",
		"destination":     "Osaka",
		"departure":       "2024-12-21 11:00:00",
		"price":           700.0,
		"seats_available": 10,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "flight number already exists", errorMessage(t, rec))

	rec = ts.request(t, http.MethodGet, "/admin/flights", admin.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Items []model.Flight `json:"items"`
	}
	decode(t, rec, &listing)
	assert.Len(t, listing.Items, 4)
}

func TestCreateFlightValidation(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")

	cases := []struct {
		name string
		body echo.Map
		want string
	}{
		{"missing fields", echo.Map{"flight_number": "FL1"}, "flight_number, destination and departure are required"},
		{"bad departure", echo.Map{"flight_number": "FL1", "destination": "Rome", "departure": "2024-12-20", "price": 100, "seats_available": 5}, "invalid departure format, want YYYY-MM-DD HH:MM:SS"},
		{"zero price", echo.Map{"flight_number": "FL1", "destination": "Rome", "departure": "2024-12-20 10:00:00", "price": 0, "seats_available": 5}, "price must be positive"},
		{"negative seats", echo.Map{"flight_number": "FL1", "destination": "Rome", "departure": "2024-12-20 10:00:00", "price": 100, "seats_available": -1}, "seats_available must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := ts.request(t, http.MethodPost, "/admin/flights", admin.Access.Token, tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, errorMessage(t, rec))
		})
	}
}

func TestUpdateFlight(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")

	rec := ts.request(t, http.MethodPut, "/admin/flights/1", admin.Access.Token, echo.Map{
		"price":           550.0,
		"seats_available": 25,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated model.Flight
	decode(t, rec, &updated)
	assert.Equal(t, 550.0, updated.Price)
	assert.Equal(t, 25, updated.SeatsAvailable)
	// untouched fields keep their seeded values
	assert.Equal(t, "New York", updated.Destination)
	assert.Equal(t, "AI101", updated.FlightNumber)

	rec = ts.request(t, http.MethodPut, "/admin/flights/1", admin.Access.Token, echo.Map{
		"price":           550.0,
		"seats_available": 25,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "flight already has these parameters", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPut, "/admin/flights/999", admin.Access.Token, echo.Map{"price": 1.0})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "flight not found", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPut, "/admin/flights/abc", admin.Access.Token, echo.Map{"price": 1.0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", errorMessage(t, rec))
}

func TestArchiveFlight(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")

	rec := ts.request(t, http.MethodPost, "/admin/flights/3/archive", admin.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var archived struct {
		Message  string `json:"message"`
		FlightID uint64 `json:"flight_id"`
	}
	decode(t, rec, &archived)
	assert.Equal(t, "Flight archived successfully!", archived.Message)
	assert.Equal(t, uint64(3), archived.FlightID)

	rec = ts.request(t, http.MethodGet, "/admin/flights/archived", admin.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var archive struct {
		Items []model.ArchivedFlight `json:"items"`
	}
	decode(t, rec, &archive)
	require.Len(t, archive.Items, 1)
	assert.Equal(t, "AI103", archive.Items[0].FlightNumber)
	assert.NotEmpty(t, archive.Items[0].ArchivedAt)

	rec = ts.request(t, http.MethodGet, "/admin/flights", admin.Access.Token, nil)
	var active struct {
		Items []model.Flight `json:"items"`
	}
	decode(t, rec, &active)
	assert.Len(t, active.Items, 2)

	// the row is gone from flights, so a second archive cannot find it
	rec = ts.request(t, http.MethodPost, "/admin/flights/3/archive", admin.Access.Token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "flight not found", errorMessage(t, rec))
}

func TestArchiveFlightWithPassengersRejected(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")
	user := ts.registerUser(t, "flyer")

	rec := ts.request(t, http.MethodPost, "/book_flight/1", user.Access.Token, echo.Map{
		"name": "Some Flyer", "age": 30, "passport_number": "AF100",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.request(t, http.MethodPost, "/admin/flights/1/archive", admin.Access.Token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "flight has booked passengers", errorMessage(t, rec))
}

func TestPromotionsAdminFlow(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")

	rec := ts.request(t, http.MethodPost, "/admin/promotions", admin.Access.Token, echo.Map{
		"code": "SUMMER20", "discount": 20.0, "expiration_date": "2030-06-30",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Message   string          `json:"message"`
		Promotion model.Promotion `json:"promotion"`
	}
	decode(t, rec, &created)
	assert.Equal(t, "Promotion added successfully!", created.Message)
	assert.Equal(t, "SUMMER20", created.Promotion.Code)
	assert.NotZero(t, created.Promotion.ID)

	rec = ts.request(t, http.MethodPost, "/admin/promotions", admin.Access.Token, echo.Map{
		"code": "SUMMER20", "discount": 5.0, "expiration_date": "2031-01-01",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Promotion code already exists!", errorMessage(t, rec))

	rec = ts.request(t, http.MethodPost, "/admin/promotions", admin.Access.Token, echo.Map{"discount": 5.0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "code and expiration_date are required", errorMessage(t, rec))

	rec = ts.request(t, http.MethodGet, "/admin/promotions", admin.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Items []model.Promotion `json:"items"`
	}
	decode(t, rec, &listing)
	require.Len(t, listing.Items, 2) // the seeded welcome code plus ours
	assert.Equal(t, "WELCOME10", listing.Items[0].Code)
	assert.Equal(t, "SUMMER20", listing.Items[1].Code)
}

func TestLogsRecordAdminActions(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")

	rec := ts.request(t, http.MethodPost, "/admin/flights", admin.Access.Token, echo.Map{
		"flight_number":   "FL950",
		"destination":     "Tokyo",
		"departure":       "2024-12-20 09:30:00",
		"price":           650.5,
		"seats_available": 30,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(t, http.MethodGet, "/admin/logs", admin.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Items []model.LogEntry `json:"items"`
	}
	decode(t, rec, &listing)
	require.NotEmpty(t, listing.Items)
	last := listing.Items[len(listing.Items)-1]
	assert.Equal(t, "Created Flight", last.Action)
	assert.Contains(t, last.Details, "FL950")
	assert.Equal(t, uint64(1), last.UserID)
	assert.NotEmpty(t, last.Timestamp)
}

func TestAdminDashboard(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.loginAs(t, "admin", "admin123")
	user := ts.registerUser(t, "frank")

	rec := ts.request(t, http.MethodPost, "/book_flight/2", user.Access.Token, echo.Map{
		"name": "Frank Stone", "age": 41, "passport_number": "FS200",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.request(t, http.MethodGet, "/admin/dashboard", admin.Access.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash struct {
		Flights    int64                   `json:"flights"`
		Passengers int64                   `json:"passengers"`
		Users      int64                   `json:"users"`
		Promotions int64                   `json:"promotions"`
		Revenue    float64                 `json:"revenue"`
		Bookings   []repository.BookingRow `json:"bookings"`
	}
	decode(t, rec, &dash)
	assert.Equal(t, int64(3), dash.Flights)
	assert.Equal(t, int64(1), dash.Passengers)
	assert.Equal(t, int64(1), dash.Users)
	assert.Equal(t, int64(1), dash.Promotions)
	assert.InDelta(t, 450.0, dash.Revenue, 0.001)
	require.Len(t, dash.Bookings, 1)
	assert.Equal(t, "AI102", dash.Bookings[0].FlightNumber)
	assert.Equal(t, "Frank Stone", dash.Bookings[0].Name)
}
