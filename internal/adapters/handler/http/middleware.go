package http

import (
	"context"
	"net/http"

	"github.com/adilaksono/lembaga-cms/internal/core/access"
	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type contextKey string

const identityKey contextKey = "identity"

const sessionCookieName = "token"

// CookieConfig carries the deployment-dependent cookie attributes.
// Secure must be true in production.
type CookieConfig struct {
	Domain string
	Secure bool
}

// SessionMiddleware resolves the session cookie on every request. A
// missing or invalid cookie leaves the request anonymous; the guards
// applied per route decide whether that is acceptable. When the auth
// service hands back a refreshed token the cookie is re-set (sliding
// session).
type SessionMiddleware struct {
	auth    ports.AuthService
	cookies CookieConfig
	maxAge  int
}

func NewSessionMiddleware(auth ports.AuthService, cookies CookieConfig, maxAgeSeconds int) *SessionMiddleware {
	return &SessionMiddleware{auth: auth, cookies: cookies, maxAge: maxAgeSeconds}
}

func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.auth.Resolve(r.Context(), cookie.Value)
		if err != nil {
			// Expired, tampered or revoked: treat as anonymous.
			next.ServeHTTP(w, r)
			return
		}

		if session.Token != "" {
			m.SetSessionCookie(w, session.Token)
		}

		ctx := context.WithValue(r.Context(), identityKey, &session.Identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRule short-circuits the subtree with 401/403 when the rule fails.
func (m *SessionMiddleware) RequireRule(rule access.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := access.Require(identityFrom(r), rule); err != nil {
				respondServiceError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *SessionMiddleware) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   m.cookies.Domain,
		HttpOnly: true,
		Secure:   m.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   m.maxAge,
	})
}

func (m *SessionMiddleware) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Path:     "/",
		Domain:   m.cookies.Domain,
		HttpOnly: true,
		Secure:   m.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// identityFrom returns the resolved identity or nil for anonymous
// requests.
func identityFrom(r *http.Request) *domain.Identity {
	identity, _ := r.Context().Value(identityKey).(*domain.Identity)
	return identity
}

// requireIdentity is for handlers mounted behind RequireRule; the guard
// guarantees an identity is present.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	identity := identityFrom(r)
	if identity == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return identity, true
}
