package repository

import (
	"context"
	"strings"
)

// FlightSearchQuery defines the optional filters for the flight search.
// Zero values impose no constraint: an empty Destination or Departure
// adds no predicate and a nil MaxPrice leaves prices unbounded.
type FlightSearchQuery struct {
	Destination string
	MaxPrice    *float64
	Departure   string
}

// FlightRow is the public shape of one search result.
type FlightRow struct {
	ID             uint64  `json:"id"`
	FlightNumber   string  `json:"flight_number"`
	Destination    string  `json:"destination"`
	Departure      string  `json:"departure"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seats_available"`
	Status         string  `json:"status"`
}

// Search composes the WHERE clause from whichever filters were supplied
// and returns every matching flight. Destination and departure match by
// substring, price by less-than-or-equal. With no filters at all the
// condition collapses to 1=1 and every flight comes back.
func (r *FlightRepo) Search(ctx context.Context, q FlightSearchQuery) ([]FlightRow, error) {
	where := []string{}
	args := []any{}

	if q.Destination != "" {
		where = append(where, "LOWER(destination) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Destination)+"%")
	}
	if q.MaxPrice != nil {
		where = append(where, "price <= ?")
		args = append(args, *q.MaxPrice)
	}
	if q.Departure != "" {
		where = append(where, "departure LIKE ?")
		args = append(args, "%"+q.Departure+"%")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	dataSQL := `SELECT
			flight_id,
			flight_number,
			destination,
			departure,
			price,
			seats_available,
			status
		FROM flights
		WHERE ` + cond + `
		ORDER BY departure ASC`

	rows, err := r.db.QueryContext(ctx, dataSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FlightRow, 0, 8)
	for rows.Next() {
		var d FlightRow
		if err := rows.Scan(
			&d.ID,
			&d.FlightNumber,
			&d.Destination,
			&d.Departure,
			&d.Price,
			&d.SeatsAvailable,
			&d.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
