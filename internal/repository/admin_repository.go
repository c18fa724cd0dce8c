package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/skyops/airline-backoffice/internal/model"
)

// ErrAdminNotFound indicates no admin row matched the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepo reads the 'admins' table. Admin accounts are written once
// by the bootstrap seed and never through the API.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// GetByUsername fetches an admin by login name.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT admin_id, username, password_hash FROM admins WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Admin{}, ErrAdminNotFound
	}
	return a, err
}

// GetByID fetches an admin by id.
func (r *AdminRepo) GetByID(ctx context.Context, id uint64) (model.Admin, error) {
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT admin_id, username, password_hash FROM admins WHERE admin_id=? LIMIT 1",
		id).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Admin{}, ErrAdminNotFound
	}
	return a, err
}
