// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketBookedEvent is published when a booking transaction commits.
// It contains enough information for downstream consumers to log and
// notify without querying the primary database.
type TicketBookedEvent struct {
    TicketID      string  `json:"ticket_id"`
    PassengerID   uint64  `json:"passenger_id"`
    UserID        uint64  `json:"user_id"`
    PassengerName string  `json:"passenger_name"`
    FlightID      uint64  `json:"flight_id"`
    FlightNumber  string  `json:"flight_number"`
    Destination   string  `json:"destination"`
    Departure     string  `json:"departure"`
    Amount        float64 `json:"amount"`
    BookedAt      string  `json:"booked_at"`
}
