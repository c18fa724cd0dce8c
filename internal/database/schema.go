package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Init creates every table the service needs.  All statements are
// CREATE TABLE IF NOT EXISTS, so calling Init on an existing database
// is harmless.
func Init(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			admin_id      INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			role          TEXT NOT NULL DEFAULT 'user'
		)`,
		`CREATE TABLE IF NOT EXISTS flights (
			flight_id       INTEGER PRIMARY KEY AUTOINCREMENT,
			flight_number   TEXT NOT NULL UNIQUE,
			destination     TEXT NOT NULL,
			departure       TEXT NOT NULL,
			price           REAL NOT NULL,
			seats_available INTEGER NOT NULL,
			status          TEXT NOT NULL DEFAULT 'On Time',
			created_at      TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS passengers (
			passenger_id    INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id         INTEGER NOT NULL,
			name            TEXT NOT NULL,
			age             INTEGER NOT NULL,
			passport_number TEXT NOT NULL UNIQUE,
			ticket_id       TEXT NOT NULL,
			flight_id       INTEGER NOT NULL,
			insurance       INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (user_id)   REFERENCES users (user_id),
			FOREIGN KEY (flight_id) REFERENCES flights (flight_id)
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id   INTEGER PRIMARY KEY AUTOINCREMENT,
			passenger_id     INTEGER NOT NULL,
			ticket_id        TEXT NOT NULL,
			flight_id        INTEGER NOT NULL,
			amount           REAL NOT NULL,
			transaction_date TEXT NOT NULL,
			FOREIGN KEY (passenger_id) REFERENCES passengers (passenger_id),
			FOREIGN KEY (flight_id)    REFERENCES flights (flight_id)
		)`,
		// user_id carries the acting principal and may name an admin,
		// so it deliberately has no foreign key.
		`CREATE TABLE IF NOT EXISTS logs (
			log_id    INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id   INTEGER NOT NULL,
			action    TEXT NOT NULL,
			details   TEXT NOT NULL DEFAULT '',
			timestamp TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS promotions (
			promo_id        INTEGER PRIMARY KEY AUTOINCREMENT,
			code            TEXT NOT NULL UNIQUE,
			discount        REAL NOT NULL,
			expiration_date TEXT NOT NULL
		)`,
		// Sessions belong to admins or users depending on role, hence no
		// foreign key on user_id either.
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id INTEGER PRIMARY KEY AUTOINCREMENT,
			token_hash TEXT NOT NULL UNIQUE,
			user_id    INTEGER NOT NULL,
			role       TEXT NOT NULL,
			discount   REAL,
			expires_at DATETIME NOT NULL,
			revoked_at DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS archived_flights (
			flight_id       INTEGER PRIMARY KEY,
			flight_number   TEXT NOT NULL UNIQUE,
			destination     TEXT NOT NULL,
			departure       TEXT NOT NULL,
			price           REAL NOT NULL,
			seats_available INTEGER NOT NULL,
			status          TEXT NOT NULL,
			created_at      TEXT NOT NULL,
			archived_at     TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			notification_id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id         INTEGER NOT NULL,
			message         TEXT NOT NULL,
			created_at      TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
