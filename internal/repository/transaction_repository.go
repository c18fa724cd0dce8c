package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/skyops/airline-backoffice/internal/model"
)

// ErrTransactionNotFound indicates no ledger entry matched the lookup.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepo appends to and reads the `transactions` ledger. Rows
// are written once per booking and never updated.
type TransactionRepo struct {
	db *sql.DB
}

// NewTransactionRepo constructs a TransactionRepo with the given DB handle.
func NewTransactionRepo(db *sql.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// CreateTx appends a ledger entry inside the caller's transaction. On
// success the generated ID is populated on the struct.
func (r *TransactionRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Transaction) error {
	const q = `INSERT INTO transactions (passenger_id, ticket_id, flight_id, amount, transaction_date)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, t.PassengerID, t.TicketID, t.FlightID, t.Amount, t.TransactionDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByTicketID fetches the ledger entry recorded for a ticket.
func (r *TransactionRepo) GetByTicketID(ctx context.Context, ticketID string) (*model.Transaction, error) {
	const q = `SELECT transaction_id, passenger_id, ticket_id, flight_id, amount, transaction_date
	           FROM transactions WHERE ticket_id = ? LIMIT 1`
	var t model.Transaction
	if err := r.db.QueryRowContext(ctx, q, ticketID).Scan(
		&t.ID, &t.PassengerID, &t.TicketID, &t.FlightID, &t.Amount, &t.TransactionDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &t, nil
}

// TotalRevenue sums every ledger amount; zero when the ledger is empty.
func (r *TransactionRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM transactions`).Scan(&total)
	return total, err
}
