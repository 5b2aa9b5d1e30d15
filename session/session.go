// Package session holds the server-side binding established at login.
// The client cookie carries only a signed opaque id; everything the
// handlers trust about the caller lives here.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"taskdesk/constants"
)

// CookieName is the session cookie set on login.
const CookieName = "taskdesk_session"

// TTL bounds how long a binding survives without a fresh login.
const TTL = 24 * time.Hour

// ErrNotFound is returned when a session id has no binding, either
// because it never existed or because logout or expiry removed it.
var ErrNotFound = errors.New("session not found")

// Identity is the per-request authenticated actor. Handlers receive
// it resolved; they never read the cookie or the store themselves.
type Identity struct {
	UserID uint           `json:"user_id"`
	Email  string         `json:"email"`
	Role   constants.Role `json:"role"`
}

// Store persists session bindings between requests.
type Store interface {
	Create(ctx context.Context, id string, identity Identity, ttl time.Duration) error
	Get(ctx context.Context, id string) (Identity, error)
	Delete(ctx context.Context, id string) error
}

// NewID returns a fresh opaque session id.
func NewID() string {
	return uuid.NewString()
}
