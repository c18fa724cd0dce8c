package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skyops/airline-backoffice/internal/model"
	"github.com/skyops/airline-backoffice/internal/queue"
	"github.com/skyops/airline-backoffice/internal/repository"
	queue_publisher "github.com/skyops/airline-backoffice/internal/service"
)

// UserHandler groups repositories required for booking, insurance,
// promotion redemption and the signed-in dashboard.  All methods assume
// that session authentication has already been performed by middleware.
// Methods may return 401 Unauthorized if the user ID cannot be
// extracted from the context.  The booking flow runs its DB operations
// inside a transaction to guarantee atomicity.
type UserHandler struct {
	FlightRepo       *repository.FlightRepo       // access to flights for seat decrements and lookups
	PassengerRepo    *repository.PassengerRepo    // access to passengers for booking rows and insurance
	TransactionRepo  *repository.TransactionRepo  // access to the payment ledger
	PromotionRepo    *repository.PromotionRepo    // access to promotions for redemption
	SessionRepo      *repository.SessionRepo      // access to sessions for the staged discount
	NotificationRepo *repository.NotificationRepo // access to notifications for the inbox listing
	LogRepo          *repository.LogRepo          // access to the audit trail
}

// NewUserHandler constructs a new UserHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewUserHandler(flightRepo *repository.FlightRepo, passengerRepo *repository.PassengerRepo, transactionRepo *repository.TransactionRepo, promotionRepo *repository.PromotionRepo, sessionRepo *repository.SessionRepo, notificationRepo *repository.NotificationRepo, logRepo *repository.LogRepo) *UserHandler {
	if flightRepo == nil || passengerRepo == nil || transactionRepo == nil || promotionRepo == nil || sessionRepo == nil || notificationRepo == nil || logRepo == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{
		FlightRepo:       flightRepo,
		PassengerRepo:    passengerRepo,
		TransactionRepo:  transactionRepo,
		PromotionRepo:    promotionRepo,
		SessionRepo:      sessionRepo,
		NotificationRepo: notificationRepo,
		LogRepo:          logRepo,
	}
}

// BookFlight handles POST /book_flight/:flight_id.  Inside one
// transaction it takes a seat off the flight, creates the passenger row
// with a fresh ticket id and appends the ledger entry, applying and
// clearing the session's staged discount.  After commit it publishes a
// ticket.booked event (broker failures are tolerated) and writes the
// audit entry.  Returns 201 Created with the ticket id and the charged
// amount.
func (h *UserHandler) BookFlight(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sessionID, ok := c.Get("session_id").(uint64)
	if !ok || sessionID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	flightID, err := strconv.ParseUint(c.Param("flight_id"), 10, 64)
	if err != nil || flightID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	// bind request body
	var body struct {
		Name           string `json:"name"`
		Age            int    `json:"age"`
		PassportNumber string `json:"passport_number"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	passport := strings.TrimSpace(body.PassportNumber)
	if name == "" || passport == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and passport_number are required"})
	}
	if body.Age <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "age must be positive"})
	}
	// ensure flight exists and grab its current price for the ledger
	flight, err := h.FlightRepo.GetByID(c.Request().Context(), flightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	ctx := c.Request().Context()
	tx, err := h.FlightRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	// seat check and decrement are one guarded statement
	if err := h.FlightRepo.DecrementSeatsTx(ctx, tx, flightID); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "no seats available"})
		}
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reserve seat"})
	}
	// a staged promotion is applied exactly once, then cleared
	discount, err := h.SessionRepo.ConsumeDiscountTx(ctx, tx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to apply discount"})
	}
	amount := flight.Price * (1 - discount/100)

	passenger := &model.Passenger{
		UserID:         userID,
		Name:           name,
		Age:            body.Age,
		PassportNumber: passport,
		TicketID:       uuid.NewString(),
		FlightID:       flightID,
	}
	if err := h.PassengerRepo.CreateTx(ctx, tx, passenger); err != nil {
		if errors.Is(err, repository.ErrPassportExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "passport number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create passenger"})
	}

	bookedAt := time.Now().UTC().Format(departureLayout)
	entry := &model.Transaction{
		PassengerID:     passenger.ID,
		TicketID:        passenger.TicketID,
		FlightID:        flightID,
		Amount:          amount,
		TransactionDate: bookedAt,
	}
	if err := h.TransactionRepo.CreateTx(ctx, tx, entry); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record transaction"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// post-commit side effects: the booking stands even when these fail
	pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishTicketBooked(pubCtx, queue.TicketBookedEvent{
		TicketID:      passenger.TicketID,
		PassengerID:   passenger.ID,
		UserID:        userID,
		PassengerName: passenger.Name,
		FlightID:      flight.ID,
		FlightNumber:  flight.FlightNumber,
		Destination:   flight.Destination,
		Departure:     flight.Departure,
		Amount:        amount,
		BookedAt:      bookedAt,
	})
	_ = h.LogRepo.Insert(ctx, userID, "Booked Flight", fmt.Sprintf("Flight: %s, Ticket: %s", flight.FlightNumber, passenger.TicketID))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Flight booked successfully!",
		"ticket_id": passenger.TicketID,
		"amount":    amount,
		"discount":  discount,
	})
}
