package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/skyops/airline-backoffice/internal/model"
)

// ErrSessionNotFound covers missing, expired and revoked sessions alike
// so callers cannot distinguish which case they hit.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepo persists server-held sessions (single 'token_hash' column,
// expiry and revocation checked in Go, staged discount lives on the row).
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a session row and returns its id.
func (r *SessionRepo) Create(ctx context.Context, userID uint64, role, tokenHash string, exp time.Time) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO sessions (user_id, role, token_hash, expires_at) VALUES (?,?,?,?)",
		userID, role, tokenHash, exp)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetActiveByID returns the session when it exists, is not revoked and
// has not expired; otherwise ErrSessionNotFound.
func (r *SessionRepo) GetActiveByID(ctx context.Context, id uint64) (model.Session, error) {
	return r.getActive(ctx,
		"SELECT session_id, token_hash, user_id, role, discount, expires_at, revoked_at, created_at FROM sessions WHERE session_id=? LIMIT 1",
		id)
}

// GetActiveByHash is GetActiveByID keyed by the token hash. It backs the
// refresh endpoint, where the client proves possession of the raw token.
func (r *SessionRepo) GetActiveByHash(ctx context.Context, tokenHash string) (model.Session, error) {
	return r.getActive(ctx,
		"SELECT session_id, token_hash, user_id, role, discount, expires_at, revoked_at, created_at FROM sessions WHERE token_hash=? LIMIT 1",
		tokenHash)
}

func (r *SessionRepo) getActive(ctx context.Context, query string, arg any) (model.Session, error) {
	var (
		s         model.Session
		discount  sql.NullFloat64
		revokedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&s.ID, &s.TokenHash, &s.UserID, &s.Role, &discount, &s.ExpiresAt, &revokedAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, ErrSessionNotFound
		}
		return model.Session{}, err
	}
	if revokedAt.Valid {
		return model.Session{}, ErrSessionNotFound
	}
	if time.Now().UTC().After(s.ExpiresAt) {
		return model.Session{}, ErrSessionNotFound
	}
	if discount.Valid {
		s.Discount = &discount.Float64
	}
	return s, nil
}

// Revoke marks one session as revoked.
func (r *SessionRepo) Revoke(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE sessions SET revoked_at=CURRENT_TIMESTAMP WHERE session_id=? AND revoked_at IS NULL",
		id)
	return err
}

// RevokeAllFor revokes every active session of one principal. Role is
// part of the key because admin and user ids come from separate tables.
func (r *SessionRepo) RevokeAllFor(ctx context.Context, userID uint64, role string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE sessions SET revoked_at=CURRENT_TIMESTAMP WHERE user_id=? AND role=? AND revoked_at IS NULL",
		userID, role)
	return err
}

// StageDiscount stores a promotion percentage on the session for a later
// booking to consume.
func (r *SessionRepo) StageDiscount(ctx context.Context, id uint64, discount float64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE sessions SET discount=? WHERE session_id=? AND revoked_at IS NULL",
		discount, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ConsumeDiscountTx reads and clears the staged discount inside the
// caller's transaction. It returns zero when nothing was staged.
func (r *SessionRepo) ConsumeDiscountTx(ctx context.Context, tx *sql.Tx, id uint64) (float64, error) {
	var discount sql.NullFloat64
	err := tx.QueryRowContext(ctx,
		"SELECT discount FROM sessions WHERE session_id=? LIMIT 1", id).Scan(&discount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}
	if !discount.Valid {
		return 0, nil
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE sessions SET discount=NULL WHERE session_id=?", id); err != nil {
		return 0, err
	}
	return discount.Float64, nil
}
