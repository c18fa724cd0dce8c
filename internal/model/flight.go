package model

// Flight represents a bookable flight as stored in the `flights`
// table.  Departure and CreatedAt are kept as the raw text the
// store holds ("2006-01-02 15:04:05") because the search path
// filters departures by substring, not by parsed time.
//
// Fields:
//  ID             – primary key identifier.
//  FlightNumber   – unique flight designator (e.g. AI101).
//  Destination    – destination city.
//  Departure      – departure timestamp text.
//  Price          – ticket price.
//  SeatsAvailable – remaining bookable seats.
//  Status         – operational state, defaults to "On Time".
//  CreatedAt      – creation timestamp text.
type Flight struct {
    ID             uint64  // flights.flight_id
    FlightNumber   string  // flights.flight_number
    Destination    string  // flights.destination
    Departure      string  // flights.departure
    Price          float64 // flights.price
    SeatsAvailable int     // flights.seats_available
    Status         string  // flights.status
    CreatedAt      string  // flights.created_at
}

// ArchivedFlight is a flight row moved into `archived_flights` by the
// administrative archive operation.  It mirrors Flight plus the time
// of archival.
//
// Fields: as Flight, plus
//  ArchivedAt – when the row was moved out of `flights`.
type ArchivedFlight struct {
    ID             uint64  // archived_flights.flight_id
    FlightNumber   string  // archived_flights.flight_number
    Destination    string  // archived_flights.destination
    Departure      string  // archived_flights.departure
    Price          float64 // archived_flights.price
    SeatsAvailable int     // archived_flights.seats_available
    Status         string  // archived_flights.status
    CreatedAt      string  // archived_flights.created_at
    ArchivedAt     string  // archived_flights.archived_at
}
