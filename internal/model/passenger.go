package model

// Passenger is the booking artifact linking a user to a flight, as
// stored in the `passengers` table.  One row is created per booked
// seat; the insurance flag only ever transitions false→true.
//
// Fields:
//  ID             – primary key identifier.
//  UserID         – user who made the booking.
//  Name           – passenger name as printed on the ticket.
//  Age            – passenger age.
//  PassportNumber – unique passport identifier.
//  TicketID       – ticket reference shared with the transaction row.
//  FlightID       – flight being flown.
//  Insurance      – whether travel insurance was added.
type Passenger struct {
    ID             uint64 // passengers.passenger_id
    UserID         uint64 // passengers.user_id
    Name           string // passengers.name
    Age            int    // passengers.age
    PassportNumber string // passengers.passport_number
    TicketID       string // passengers.ticket_id
    FlightID       uint64 // passengers.flight_id
    Insurance      bool   // passengers.insurance
}
