package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
	"github.com/adilaksono/lembaga-cms/internal/core/token"
	"github.com/adilaksono/lembaga-cms/internal/logging"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[strings.ToLower(email)], nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := f.users[key]; exists {
		return domain.ErrEmailTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[key] = user
	return nil
}

func (f *fakeUserRepo) List(context.Context, int, int) ([]*domain.User, int, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) UpdateRole(context.Context, uuid.UUID, domain.Role) error { return nil }

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = hash
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeRevocationRepo struct {
	mu      sync.Mutex
	revoked map[uuid.UUID]time.Time
}

func newFakeRevocationRepo() *fakeRevocationRepo {
	return &fakeRevocationRepo{revoked: map[uuid.UUID]time.Time{}}
}

func (f *fakeRevocationRepo) Revoke(_ context.Context, userID uuid.UUID, before, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[userID] = before
	return nil
}

func (f *fakeRevocationRepo) IsRevoked(_ context.Context, userID uuid.UUID, issuedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	before, ok := f.revoked[userID]
	return ok && issuedAt.Before(before), nil
}

func (f *fakeRevocationRepo) PurgeExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func newTestAuthService(t *testing.T, ttl time.Duration) (ports.AuthService, *fakeUserRepo, *fakeRevocationRepo, *token.Codec) {
	t.Helper()
	users := newFakeUserRepo()
	revoked := newFakeRevocationRepo()
	codec := token.NewCodec([]byte("test-secret"), ttl)
	svc := NewAuthService(users, revoked, codec, logging.Discard())
	return svc, users, revoked, codec
}

func registerTestUser(t *testing.T, svc ports.AuthService, email, password string) *ports.Session {
	t.Helper()
	session, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     email,
		Password:  password,
		FirstName: "Test",
	})
	require.NoError(t, err)
	return session
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _, codec := newTestAuthService(t, time.Hour)
	registerTestUser(t, svc, "Admin@Example.com", "correct horse battery")

	// Email matching is case-insensitive.
	session, err := svc.Login(context.Background(), "admin@example.COM", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", session.Identity.Email)
	assert.Equal(t, domain.RoleUser, session.Identity.Role)

	claims, err := codec.Verify(session.Token)
	require.NoError(t, err)
	identity, err := claims.Identity()
	require.NoError(t, err)
	assert.Equal(t, session.Identity, identity)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t, time.Hour)
	registerTestUser(t, svc, "real@example.com", "correct horse battery")

	_, errNoUser := svc.Login(context.Background(), "nonexistent@example.com", "anything")
	_, errBadPass := svc.Login(context.Background(), "real@example.com", "wrongpassword")

	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoUser, errBadPass)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t, time.Hour)
	registerTestUser(t, svc, "new@example.com", "correct horse battery")

	stored, err := users.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "correct horse battery")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse battery")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t, time.Hour)
	registerTestUser(t, svc, "dup@example.com", "correct horse battery")

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "DUP@example.com",
		Password: "another password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestResolveRejectsRevokedToken(t *testing.T) {
	svc, _, revoked, _ := newTestAuthService(t, time.Hour)
	session := registerTestUser(t, svc, "user@example.com", "correct horse battery")

	resolved, err := svc.Resolve(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Identity, resolved.Identity)

	// Watermark after the token's iat kills it.
	revoked.revoked[session.Identity.ID] = time.Now().Add(time.Minute)

	_, err = svc.Resolve(context.Background(), session.Token)
	assert.Error(t, err)
}

func TestResolveSlidingRefresh(t *testing.T) {
	// A token with one minute left is well past the half-TTL mark of
	// the hour-long sessions this service issues, so Resolve must hand
	// back a refreshed token.
	svc, _, _, codec := newTestAuthService(t, time.Hour)
	session := registerTestUser(t, svc, "user@example.com", "correct horse battery")

	short := token.NewCodec([]byte("test-secret"), time.Minute)
	nearlyExpired, err := short.Issue(session.Identity)
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), nearlyExpired)
	require.NoError(t, err)
	require.NotEmpty(t, resolved.Token)

	claims, err := codec.Verify(resolved.Token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(30*time.Minute)))
}

func TestResolveFreshTokenNotRefreshed(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t, time.Hour)
	session := registerTestUser(t, svc, "user@example.com", "correct horse battery")

	resolved, err := svc.Resolve(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Empty(t, resolved.Token, "a fresh token must not be re-issued")
}

func TestChangePassword(t *testing.T) {
	svc, users, revoked, _ := newTestAuthService(t, time.Hour)
	session := registerTestUser(t, svc, "user@example.com", "old password 123")

	_, err := svc.ChangePassword(context.Background(), session.Identity.ID, "wrong", "new password 456")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	fresh, err := svc.ChangePassword(context.Background(), session.Identity.ID, "old password 123", "new password 456")
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.Token)

	stored, err := users.GetByID(context.Background(), session.Identity.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new password 456")))

	_, wasRevoked := revoked.revoked[session.Identity.ID]
	assert.True(t, wasRevoked, "old sessions must be revoked on password change")
}
