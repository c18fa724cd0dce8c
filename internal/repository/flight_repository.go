// Package repository contains data access logic for flight operations. This
// file defines the repository methods for the `flights` table plus the
// transactional archive move into `archived_flights`. Departure values are
// raw DB text ("2006-01-02 15:04:05") because the search path matches them
// by substring rather than by parsed time.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions

	"github.com/skyops/airline-backoffice/internal/model"
)

// ErrFlightNotFound indicates that a flight was not located in the DB.
var ErrFlightNotFound = errors.New("flight not found")

// ErrFlightNumberExists indicates a uniqueness violation on flight_number.
var ErrFlightNumberExists = errors.New("flight number already exists")

// ErrNoChange indicates the UPDATE attempted to set fields equal to current values.
var ErrNoChange = errors.New("no change")

// FlightRepo manages persistence for flights.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.  Use this method to
// obtain a *sql.DB when you need fine-grained transaction control.
func (r *FlightRepo) DB() *sql.DB {
	return r.db
}

// Create inserts a new flight and assigns the generated ID back to the
// struct.  After the insert a SELECT populates DB-default fields
// (status, created_at) so callers receive a fully populated record.
func (r *FlightRepo) Create(ctx context.Context, f *model.Flight) error {
	const q = `INSERT INTO flights (flight_number, destination, departure, price, seats_available) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.FlightNumber, f.Destination, f.Departure, f.Price, f.SeatsAvailable)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrFlightNumberExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const sel = `SELECT flight_id, flight_number, destination, departure, price, seats_available, status, created_at FROM flights WHERE flight_id = ?`
	return r.db.QueryRowContext(ctx, sel, f.ID).Scan(
		&f.ID, &f.FlightNumber, &f.Destination, &f.Departure, &f.Price, &f.SeatsAvailable, &f.Status, &f.CreatedAt,
	)
}

// GetByID retrieves a flight by its ID.  It returns ErrFlightNotFound if
// there is no matching row.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (*model.Flight, error) {
	const q = `SELECT flight_id, flight_number, destination, departure, price, seats_available, status, created_at FROM flights WHERE flight_id = ?`
	var f model.Flight
	err := r.db.QueryRowContext(ctx, q, id).Scan(&f.ID, &f.FlightNumber, &f.Destination, &f.Departure, &f.Price, &f.SeatsAvailable, &f.Status, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// GetByNumber retrieves a flight by its unique flight number.
func (r *FlightRepo) GetByNumber(ctx context.Context, number string) (*model.Flight, error) {
	const q = `SELECT flight_id, flight_number, destination, departure, price, seats_available, status, created_at FROM flights WHERE flight_number = ?`
	var f model.Flight
	err := r.db.QueryRowContext(ctx, q, number).Scan(&f.ID, &f.FlightNumber, &f.Destination, &f.Departure, &f.Price, &f.SeatsAvailable, &f.Status, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListAll returns all flights ordered by departure. When no flights
// exist it returns an empty slice and nil error.
func (r *FlightRepo) ListAll(ctx context.Context) ([]model.Flight, error) {
	const q = `SELECT flight_id, flight_number, destination, departure, price, seats_available, status, created_at
	           FROM flights
	           ORDER BY departure ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Flight
	for rows.Next() {
		var f model.Flight
		if err := rows.Scan(
			&f.ID, &f.FlightNumber, &f.Destination, &f.Departure, &f.Price, &f.SeatsAvailable, &f.Status, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update rewrites a flight's mutable attributes. It only performs the
// UPDATE when there is at least one differing field; otherwise it
// returns ErrNoChange. When no row matches the id, it returns
// sql.ErrNoRows.
func (r *FlightRepo) Update(ctx context.Context, f *model.Flight) error {
	const q = `UPDATE flights
	           SET destination = ?, departure = ?, price = ?, seats_available = ?, status = ?
	           WHERE flight_id = ?
	             AND (destination <> ? OR departure <> ? OR price <> ? OR seats_available <> ? OR status <> ?)`

	res, err := r.db.ExecContext(ctx, q,
		f.Destination, f.Departure, f.Price, f.SeatsAvailable, f.Status, // SET
		f.ID, // WHERE
		f.Destination, f.Departure, f.Price, f.SeatsAvailable, f.Status, // only if at least one field differs
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	// Determine if it's "not found" or simply "no change".
	const qExists = `SELECT 1 FROM flights WHERE flight_id = ? LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, f.ID).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		return err
	}
	return ErrNoChange
}

// DecrementSeatsTx takes one seat off a flight inside the caller's
// transaction. The guard in the WHERE clause makes the decrement and
// the availability check a single statement, so two concurrent bookings
// cannot both take the last seat. Exhausted seats surface as
// ErrConflict, a missing flight as ErrFlightNotFound.
func (r *FlightRepo) DecrementSeatsTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE flights SET seats_available = seats_available - 1 WHERE flight_id = ? AND seats_available > 0`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM flights WHERE flight_id = ? LIMIT 1`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFlightNotFound
		}
		return err
	}
	return ErrConflict
}

// ArchiveByID moves a flight row into archived_flights within a single
// transaction. If the flight does not exist, ErrFlightNotFound is
// returned. If passengers still reference the flight, the move is
// aborted and ErrConflict is returned.
func (r *FlightRepo) ArchiveByID(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Ensure rollback or commit at the end
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	var f model.Flight
	err = tx.QueryRowContext(ctx,
		`SELECT flight_id, flight_number, destination, departure, price, seats_available, status, created_at FROM flights WHERE flight_id = ?`, id,
	).Scan(&f.ID, &f.FlightNumber, &f.Destination, &f.Departure, &f.Price, &f.SeatsAvailable, &f.Status, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFlightNotFound
		}
		return err
	}

	// Booked passengers keep their flight row; archiving under them
	// would break the foreign key anyway.
	var paxCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers WHERE flight_id = ?`, id).Scan(&paxCount); err != nil {
		return err
	}
	if paxCount > 0 {
		return ErrConflict
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO archived_flights (flight_id, flight_number, destination, departure, price, seats_available, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.FlightNumber, f.Destination, f.Departure, f.Price, f.SeatsAvailable, f.Status, f.CreatedAt); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM flights WHERE flight_id = ?`, id); err != nil {
		return err
	}
	return nil
}

// ListArchived returns all archived flights ordered by archive time,
// newest first.
func (r *FlightRepo) ListArchived(ctx context.Context) ([]model.ArchivedFlight, error) {
	const q = `SELECT flight_id, flight_number, destination, departure, price, seats_available, status, created_at, archived_at
	           FROM archived_flights
	           ORDER BY archived_at DESC, flight_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.ArchivedFlight
	for rows.Next() {
		var a model.ArchivedFlight
		if err := rows.Scan(
			&a.ID, &a.FlightNumber, &a.Destination, &a.Departure, &a.Price, &a.SeatsAvailable, &a.Status, &a.CreatedAt, &a.ArchivedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the number of active (non-archived) flights.
func (r *FlightRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flights`).Scan(&n)
	return n, err
}
