package repository

import (
	"context"
	"database/sql"

	"github.com/skyops/airline-backoffice/internal/model"
)

// LogRepo appends to and reads the `logs` audit trail.
type LogRepo struct{ DB *sql.DB }

func NewLogRepo(db *sql.DB) *LogRepo { return &LogRepo{DB: db} }

// Insert appends one audit entry. The timestamp comes from the DB default.
func (r *LogRepo) Insert(ctx context.Context, userID uint64, action, details string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO logs (user_id, action, details) VALUES (?,?,?)",
		userID, action, details)
	return err
}

// ListAll returns every log row, oldest first, unfiltered and unpaginated.
func (r *LogRepo) ListAll(ctx context.Context) ([]model.LogEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT log_id, user_id, action, details, timestamp FROM logs ORDER BY log_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
