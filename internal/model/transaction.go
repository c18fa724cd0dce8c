package model

// Transaction is an append-only ledger entry recorded alongside every
// booking, as stored in the `transactions` table.
//
// Fields:
//  ID              – primary key identifier.
//  PassengerID     – passenger the charge belongs to.
//  TicketID        – ticket reference shared with the passenger row.
//  FlightID        – flight that was booked.
//  Amount          – charged amount after any staged discount.
//  TransactionDate – timestamp text of the charge.
type Transaction struct {
    ID              uint64  // transactions.transaction_id
    PassengerID     uint64  // transactions.passenger_id
    TicketID        string  // transactions.ticket_id
    FlightID        uint64  // transactions.flight_id
    Amount          float64 // transactions.amount
    TransactionDate string  // transactions.transaction_date
}
