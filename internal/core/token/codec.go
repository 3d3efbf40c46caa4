// Package token signs and verifies the compact session tokens carried in
// the auth cookie. A token is a stateless HS256 JWT; the server keeps no
// per-session record, so a token stays valid until it expires or the
// holder's issuance watermark is revoked.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

var (
	ErrMalformed        = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// Claims is the only claims shape this service issues or accepts.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Role  string `json:"role"`
}

// Identity converts verified claims into the request-scoped identity.
// It fails when the subject is not a UUID or the role is unknown, which
// counts as a malformed token.
func (c *Claims) Identity() (domain.Identity, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: bad subject", ErrMalformed)
	}
	role, ok := domain.ParseRole(c.Role)
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: unknown role %q", ErrMalformed, c.Role)
	}
	return domain.Identity{ID: id, Email: c.Email, Role: role}, nil
}

type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// TTL is the lifetime stamped on issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a fresh token for identity. Timestamps are epoch seconds;
// the TTL is fixed at issuance and a token cannot extend itself — renewal
// means issuing a new one.
func (c *Codec) Issue(identity domain.Identity) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email: identity.Email,
		Role:  string(identity.Role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and structural shape, in that order of
// reporting: a bad token never yields a partial identity. The jwt library
// compares signatures in constant time.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}
	return claims, nil
}
