package utils // package utils provides helper functions for token creation and hashing

import (
    "crypto/rand"   // secure random number generation
    "crypto/sha256" // SHA‑256 hashing for session tokens
    "encoding/hex"  // hex encoding and decoding functions
    "time"          // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens are short‑lived and encoded
// in the Authorization header when calling protected endpoints.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// SessionToken is the random secret that names a server‑held session row.
// The Raw field is handed to the client once at login; the database keeps
// only its SHA‑256 hash, so a stolen sessions table cannot be replayed.
type SessionToken struct {
    Raw string    // raw token string returned to the client
    Exp time.Time // UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT.  Besides the standard
// subject (sub), expiration (exp) and issued‑at (iat) claims it carries the
// caller's role and the session row id (sid) so that middleware can resolve
// the server‑held session on every request without a token lookup table.
func NewAccessToken(secret string, userID uint64, role string, sessionID uint64, ttlMin int) (AccessToken, error) {
    // Expiration is the TTL added to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role,
        "sid":  sessionID,
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    // Sign with the shared secret.  On failure return a zero AccessToken.
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// NewSessionToken returns a cryptographically secure random token (raw) and
// its expiration time.  The ttlHours parameter controls how long the session
// stays valid without a fresh login.
func NewSessionToken(ttlHours int) (SessionToken, error) {
    // 48 random bytes -> 96 hex characters.
    raw, err := randomHex(48)
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{
        Raw: raw,
        Exp: time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour),
    }, nil
}

// HashSessionRaw returns the SHA‑256 hash of the raw session token as a hex
// string.  Only the hash is ever persisted.
func HashSessionRaw(raw string) string {
    sum := sha256.Sum256([]byte(raw))
    return hex.EncodeToString(sum[:])
}

// randomHex returns a hex‑encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
