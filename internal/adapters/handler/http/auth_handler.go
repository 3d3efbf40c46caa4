package http

import (
	"net/http"

	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type AuthHandler struct {
	auth    ports.AuthService
	session *SessionMiddleware
}

func NewAuthHandler(auth ports.AuthService, session *SessionMiddleware) *AuthHandler {
	return &AuthHandler{auth: auth, session: session}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// Login godoc
// @Summary      Logs a user in
// @Description  Verifies the credential pair and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.session.SetSessionCookie(w, session.Token)
	respondJSON(w, http.StatusOK, session.Identity)
}

// Register godoc
// @Summary      Creates an account
// @Description  Registers a new user and logs them in.
// @Tags         auth
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      409
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.auth.Register(r.Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.session.SetSessionCookie(w, session.Token)
	respondJSON(w, http.StatusCreated, session.Identity)
}

// Session godoc
// @Summary      Returns the current identity
// @Tags         auth
// @Success      200
// @Failure      401
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, identity)
}

// Logout godoc
// @Summary      Logs the current browser out
// @Description  Clears the session cookie. Tokens are stateless so no
// server-side record changes; other devices stay logged in.
// @Tags         auth
// @Success      200
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.ClearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// LogoutAll godoc
// @Summary      Logs out every device
// @Description  Revokes all outstanding tokens for the user and clears
// the cookie.
// @Tags         auth
// @Success      200
// @Failure      401
// @Router       /api/auth/logout-all [post]
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	if err := h.auth.RevokeAll(r.Context(), identity.ID); err != nil {
		respondServiceError(w, err)
		return
	}
	h.session.ClearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ChangePassword godoc
// @Summary      Changes the caller's password
// @Description  Requires the current password; revokes existing sessions
// and re-issues the cookie for this one.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.auth.ChangePassword(r.Context(), identity.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.session.SetSessionCookie(w, session.Token)
	respondJSON(w, http.StatusOK, session.Identity)
}
