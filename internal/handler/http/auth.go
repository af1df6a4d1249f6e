package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
)

const sessionCookieName = "gw_session"

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.startSession(w, r, user); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(w, r, &creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	user, err := h.services.AuthService.SignIn(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.startSession(w, r, user); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.UserID).Msg("user successfully signed in")
	utils.WriteJSON(w, user, http.StatusOK)
}

// signOut expires the session cookie. Bearer tokens stay valid until they
// expire on their own.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0), -1))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CurrentUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// startSession issues a token and hands it out both as a bearer header for
// API clients and as a cookie for the browser.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) error {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		return err
	}

	var expires time.Time
	if token.ExpiresAt != nil {
		expires = token.ExpiresAt.Time
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	http.SetCookie(w, h.sessionCookie(token.SignedString, expires, 0))
	return nil
}

func (h *Handler) sessionCookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
