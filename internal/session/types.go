package session

import (
	"context"
	"errors"

	"github.com/tarekmagdym/MasterStack/internal/domain/enums"
)

var (
	// ErrNoSession is returned by UpdateUser when there is no active session.
	ErrNoSession = errors.New("no active session")
	// ErrStaleGeneration is returned when a fenced write lost to a newer
	// session mutation (e.g. a login completing after logout).
	ErrStaleGeneration = errors.New("session generation is stale")
)

// User is the client-side view of the signed-in account, exactly as the
// server serializes it.
type User struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      enums.Role `json:"role"`
	LastLogin string     `json:"lastLogin,omitempty"`
}

// Storage is the durable two-key backing of the session: one key for the
// opaque token, one for the serialized user record. Absence of a key reads
// back as the zero value with a nil error.
type Storage interface {
	ReadToken(ctx context.Context) (string, error)
	ReadUser(ctx context.Context) ([]byte, error)
	WriteSession(ctx context.Context, token string, user []byte) error
	WriteUser(ctx context.Context, user []byte) error
	Clear(ctx context.Context) error
}

// Navigator is the navigation surface the store signals after a session is
// destroyed.
type Navigator interface {
	NavigateToLogin()
}
