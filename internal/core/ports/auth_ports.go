package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

// RevocationRepository records per-user revocation watermarks. A token is
// revoked when it was issued before the holder's watermark. Rows carry the
// latest possible expiry of the tokens they cover so the sweeper can drop
// them once every covered token has expired anyway.
type RevocationRepository interface {
	Revoke(ctx context.Context, userID uuid.UUID, before, expiresAt time.Time) error
	IsRevoked(ctx context.Context, userID uuid.UUID, issuedAt time.Time) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Session is the outcome of a successful login, registration or resolve:
// the identity plus the signed token to place in the cookie. Token is
// empty when a resolve did not need to refresh the cookie.
type Session struct {
	Identity domain.Identity
	Token    string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	// Resolve verifies a presented token and applies the revocation
	// check. It returns a refreshed token in Session.Token when the
	// presented one is past half its lifetime.
	Resolve(ctx context.Context, tokenString string) (*Session, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) (*Session, error)
	// RevokeAll invalidates every outstanding token for the user.
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}
