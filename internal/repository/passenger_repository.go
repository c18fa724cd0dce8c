// Package repository contains data access logic separated from HTTP handlers.
// This file covers the `passengers` table: the booking artifacts linking a
// user to a flight. Rows are created inside the booking transaction, the
// insurance flag is flipped by a dedicated update, and nothing is ever
// deleted in the normal flow.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"github.com/skyops/airline-backoffice/internal/model"
)

// ErrPassengerNotFound is returned when a passenger cannot be found in the DB.
var ErrPassengerNotFound = errors.New("passenger not found")

// ErrPassportExists indicates a uniqueness violation on passport_number.
var ErrPassportExists = errors.New("passport number already exists")

// PassengerRepo encapsulates all database queries related to passengers.
type PassengerRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewPassengerRepo constructs a PassengerRepo with the provided DB handle.
func NewPassengerRepo(db *sql.DB) *PassengerRepo {
	return &PassengerRepo{db: db}
}

// CreateTx inserts a passenger using the provided transaction instead of
// the repository's DB handle, so the row participates in the caller's
// booking transaction. On success the generated ID is populated.
func (r *PassengerRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Passenger) error {
	const q = `INSERT INTO passengers (user_id, name, age, passport_number, ticket_id, flight_id, insurance)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, p.UserID, p.Name, p.Age, p.PassportNumber, p.TicketID, p.FlightID, p.Insurance)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPassportExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByTicketID fetches a passenger by its ticket reference.
func (r *PassengerRepo) GetByTicketID(ctx context.Context, ticketID string) (*model.Passenger, error) {
	const q = `SELECT passenger_id, user_id, name, age, passport_number, ticket_id, flight_id, insurance
	           FROM passengers WHERE ticket_id = ? LIMIT 1`
	var p model.Passenger
	if err := r.db.QueryRowContext(ctx, q, ticketID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Age, &p.PassportNumber, &p.TicketID, &p.FlightID, &p.Insurance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPassengerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByPassport fetches a passenger by passport number.
func (r *PassengerRepo) GetByPassport(ctx context.Context, passport string) (*model.Passenger, error) {
	const q = `SELECT passenger_id, user_id, name, age, passport_number, ticket_id, flight_id, insurance
	           FROM passengers WHERE passport_number = ? LIMIT 1`
	var p model.Passenger
	if err := r.db.QueryRowContext(ctx, q, passport).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Age, &p.PassportNumber, &p.TicketID, &p.FlightID, &p.Insurance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPassengerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// AddInsurance unconditionally sets the insurance flag on every passenger
// row carrying the ticket id. The affected-row count is intentionally not
// checked: repeating the call on an insured ticket, or calling it with an
// unknown ticket, behaves exactly like the first call.
func (r *PassengerRepo) AddInsurance(ctx context.Context, ticketID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE passengers SET insurance = 1 WHERE ticket_id = ?`, ticketID)
	return err
}

// BookingRow joins a passenger with its flight for dashboard listings.
type BookingRow struct {
	PassengerID    uint64  `json:"passenger_id"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	PassportNumber string  `json:"passport_number"`
	TicketID       string  `json:"ticket_id"`
	Insurance      bool    `json:"insurance"`
	FlightID       uint64  `json:"flight_id"`
	FlightNumber   string  `json:"flight_number"`
	Destination    string  `json:"destination"`
	Departure      string  `json:"departure"`
	FlightStatus   string  `json:"flight_status"`
	Price          float64 `json:"price"`
}

// ListByUser returns all bookings of one user joined with flight details,
// ordered by booking id.
func (r *PassengerRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingRow, error) {
	const q = `SELECT p.passenger_id, p.name, p.age, p.passport_number, p.ticket_id, p.insurance,
	                  f.flight_id, f.flight_number, f.destination, f.departure, f.status, f.price
	           FROM passengers p
	           JOIN flights f ON f.flight_id = p.flight_id
	           WHERE p.user_id = ?
	           ORDER BY p.passenger_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookingRow
	for rows.Next() {
		var b BookingRow
		if err := rows.Scan(
			&b.PassengerID, &b.Name, &b.Age, &b.PassportNumber, &b.TicketID, &b.Insurance,
			&b.FlightID, &b.FlightNumber, &b.Destination, &b.Departure, &b.FlightStatus, &b.Price,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every booking joined with flight details, for the
// administrative passenger overview.
func (r *PassengerRepo) ListAll(ctx context.Context) ([]BookingRow, error) {
	const q = `SELECT p.passenger_id, p.name, p.age, p.passport_number, p.ticket_id, p.insurance,
	                  f.flight_id, f.flight_number, f.destination, f.departure, f.status, f.price
	           FROM passengers p
	           JOIN flights f ON f.flight_id = p.flight_id
	           ORDER BY p.passenger_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookingRow
	for rows.Next() {
		var b BookingRow
		if err := rows.Scan(
			&b.PassengerID, &b.Name, &b.Age, &b.PassportNumber, &b.TicketID, &b.Insurance,
			&b.FlightID, &b.FlightNumber, &b.Destination, &b.Departure, &b.FlightStatus, &b.Price,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of passenger rows.
func (r *PassengerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&n)
	return n, err
}
