package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/skyops/airline-backoffice/internal/utils"
)

// Seed inserts the default admin account, a welcome promotion and three
// sample flights.  Every block is guarded by a table-empty check rather
// than an upsert, so rerunning Seed against a populated database inserts
// nothing.
func Seed(ctx context.Context, db *sql.DB, bcryptCost int) error {
	if empty, err := tableEmpty(ctx, db, "admins"); err != nil {
		return err
	} else if empty {
		hash, err := utils.HashPassword("admin123", bcryptCost)
		if err != nil {
			return fmt.Errorf("hash default admin password: %w", err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO admins (username, password_hash) VALUES (?, ?)`,
			"admin", hash); err != nil {
			return fmt.Errorf("seed admins: %w", err)
		}
	}

	if empty, err := tableEmpty(ctx, db, "promotions"); err != nil {
		return err
	} else if empty {
		exp := time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")
		if _, err := db.ExecContext(ctx,
			`INSERT INTO promotions (code, discount, expiration_date) VALUES (?, ?, ?)`,
			"WELCOME10", 10.0, exp); err != nil {
			return fmt.Errorf("seed promotions: %w", err)
		}
	}

	if empty, err := tableEmpty(ctx, db, "flights"); err != nil {
		return err
	} else if empty {
		samples := []struct {
			number      string
			destination string
			departure   string
			price       float64
			seats       int
		}{
			{"AI101", "New York", "2024-12-15 08:00:00", 500.00, 20},
			{"AI102", "London", "2024-12-16 10:00:00", 450.00, 15},
			{"AI103", "Paris", "2024-12-17 13:00:00", 400.00, 10},
		}
		for _, s := range samples {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO flights (flight_number, destination, departure, price, seats_available)
				 VALUES (?, ?, ?, ?, ?)`,
				s.number, s.destination, s.departure, s.price, s.seats); err != nil {
				return fmt.Errorf("seed flights: %w", err)
			}
		}
	}

	return nil
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n == 0, nil
}
