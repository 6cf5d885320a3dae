// Package session persists the authenticated user snapshot client-side.
//
// The snapshot travels in a signed cookie: the browser holds the only
// copy, the service keeps no session table. Login writes it, a
// self-profile save overwrites it, logout clears it. A cookie that is
// missing, expired, tampered with, or simply malformed reads as "no
// session" rather than an error.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/platform/sessioncookie"
)

// User is the authenticated user snapshot carried by a session.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	Active    bool   `json:"activo"`
	Admin     bool   `json:"admin"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// FromDirectory converts a directory user record into a session snapshot.
func FromDirectory(u users.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Active:    u.Active,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}

// Role derives the coarse view role from the admin flag.
func (u User) Role() string {
	if u.Admin {
		return "admin"
	}
	return "user"
}

type claims struct {
	User User `json:"usr"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session snapshots.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// ErrNoSecret rejects codec construction without signing material.
var ErrNoSecret = errors.New("session: signing secret is required")

// NewCodec builds a codec with the given HMAC secret and token lifetime.
func NewCodec(secret string, ttl time.Duration) (Codec, error) {
	if secret == "" {
		return Codec{}, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Encode signs a user snapshot into a compact token.
func (c Codec) Encode(user User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return token.SignedString(c.secret)
}

// Decode verifies a token and returns the snapshot it carries. Any
// verification failure reads as "no session".
func (c Codec) Decode(raw string) (User, bool) {
	var parsed claims
	token, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || token == nil || !token.Valid {
		return User{}, false
	}
	if parsed.User.ID == 0 {
		return User{}, false
	}
	return parsed.User, true
}

// Store combines the codec with session cookie transport.
type Store struct {
	codec  Codec
	policy requestmeta.SchemePolicy
}

// NewStore builds a session store over the given codec.
func NewStore(codec Codec, policy requestmeta.SchemePolicy) Store {
	return Store{codec: codec, policy: policy}
}

// Save persists the snapshot, overwriting any prior session. Signing
// failures drop the cookie write; the caller's redirect then lands on
// the login guard, which is the surfaced failure mode.
func (s Store) Save(w http.ResponseWriter, r *http.Request, user User) {
	token, err := s.codec.Encode(user)
	if err != nil {
		return
	}
	sessioncookie.WriteWithPolicy(w, r, token, s.policy)
}

// Load returns the current session snapshot when one is present and valid.
func (s Store) Load(r *http.Request) (User, bool) {
	raw, ok := sessioncookie.Read(r)
	if !ok {
		return User{}, false
	}
	return s.codec.Decode(raw)
}

// Clear destroys the session.
func (s Store) Clear(w http.ResponseWriter, r *http.Request) {
	sessioncookie.ClearWithPolicy(w, r, s.policy)
}
