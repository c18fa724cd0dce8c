package model

import "time"

// Session models an entry in the `sessions` table.  A session is
// created at login, resolved by the auth middleware on every request
// and revoked at logout.  The plain token is not stored; only its
// SHA‑256 hash.  A staged promotion discount lives on the session
// until a booking consumes it.
//
// Fields:
//  ID        – primary key identifier.
//  TokenHash – SHA‑256 hex digest of the session token.
//  UserID    – owner of the session (admin or user id, per Role).
//  Role      – "admin" or "user"; decides which table UserID names.
//  Discount  – staged promotion percentage (nil when none staged).
//  ExpiresAt – expiration timestamp of the session.
//  RevokedAt – when the session was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type Session struct {
    ID        uint64     // sessions.session_id
    TokenHash string     // sessions.token_hash
    UserID    uint64     // sessions.user_id
    Role      string     // sessions.role
    Discount  *float64   // sessions.discount (nullable)
    ExpiresAt time.Time  // sessions.expires_at
    RevokedAt *time.Time // sessions.revoked_at (nullable)
    CreatedAt time.Time  // sessions.created_at
}
