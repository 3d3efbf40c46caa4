package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
	"github.com/adilaksono/lembaga-cms/internal/core/token"
	"github.com/adilaksono/lembaga-cms/internal/logging"
)

const bcryptCost = 12

// dummyHash is compared against the submitted password when no account
// matches the email, so a login attempt costs the same bcrypt work whether
// the account exists or not.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-account-sentinel"), bcryptCost)

type AuthService struct {
	users   ports.UserRepository
	revoked ports.RevocationRepository
	codec   *token.Codec
	log     logging.Logger
}

func NewAuthService(users ports.UserRepository, revoked ports.RevocationRepository, codec *token.Codec, log logging.Logger) ports.AuthService {
	return &AuthService{
		users:   users,
		revoked: revoked,
		codec:   codec,
		log:     log,
	}
}

// Login verifies the credential pair and issues a fresh session token.
// "No such account" and "wrong password" are indistinguishable to the
// caller, in error kind and in work performed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = normalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || user == nil {
		s.log.Warn(ctx, "failed login attempt", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Register creates a credential record and logs the new user in. The
// email-uniqueness race between concurrent registrations is settled by the
// store's unique index, not by the existence check here.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.Session, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "email", email)
	return s.issueSession(ctx, user)
}

// Resolve maps a presented token to an identity. Verification failures
// and revoked tokens are logged with their kind but look identical to the
// client, which only ever sees 401. When the token is past half its
// lifetime a refreshed one is returned alongside the identity (sliding
// session).
func (s *AuthService) Resolve(ctx context.Context, tokenString string) (*ports.Session, error) {
	claims, err := s.codec.Verify(tokenString)
	if err != nil {
		s.log.Debug(ctx, "token rejected", "reason", err)
		return nil, err
	}

	identity, err := claims.Identity()
	if err != nil {
		s.log.Debug(ctx, "token rejected", "reason", err)
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, identity.ID, claims.IssuedAt.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		s.log.Debug(ctx, "token rejected", "reason", "revoked", "user_id", identity.ID)
		return nil, token.ErrExpired
	}

	session := &ports.Session{Identity: identity}
	if time.Until(claims.ExpiresAt.Time) < s.codec.TTL()/2 {
		refreshed, err := s.codec.Issue(identity)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh token: %w", err)
		}
		session.Token = refreshed
	}
	return session, nil
}

// ChangePassword verifies the current password before replacing the hash,
// then revokes outstanding tokens and issues a fresh one for this session.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) (*ports.Session, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.RevokeAll(ctx, userID); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "password changed", "user_id", userID)
	return s.issueSession(ctx, user)
}

// RevokeAll records a revocation watermark: every token issued before now
// is dead on next resolve. The row can be purged once the longest-lived
// covered token would have expired on its own.
func (s *AuthService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	// Truncated to seconds to match JWT timestamp precision; a token
	// issued in the same second as the revocation survives.
	now := time.Now().Truncate(time.Second)
	if err := s.revoked.Revoke(ctx, userID, now, now.Add(s.codec.TTL())); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*ports.Session, error) {
	identity := domain.Identity{ID: user.ID, Email: user.Email, Role: user.Role}
	signed, err := s.codec.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &ports.Session{Identity: identity, Token: signed}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
