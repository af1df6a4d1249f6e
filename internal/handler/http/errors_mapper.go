package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/greenwall/internal/app"
	"github.com/MKhiriev/greenwall/internal/crypto"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/internal/store"
	"github.com/MKhiriev/greenwall/internal/utils"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first target matched by
// errors.Is decides the response. An empty message means the error text
// itself is returned.
var errorStatusMap = []errorMapping{
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrNoCredentials, http.StatusUnauthorized, app.MsgUnauthenticated},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ""},
	{ErrEmptyToken, http.StatusUnauthorized, ""},

	{service.ErrNoteLocked, http.StatusForbidden, app.MsgNoteLocked},
	{store.ErrProfileNotFound, http.StatusNotFound, app.MsgProfileNotFound},
	{service.ErrNotFound, http.StatusNotFound, app.MsgNoteNotFound},

	// Validation failures carry the validator's message.
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{ErrMissingAvatarFile, http.StatusBadRequest, ""},
	{service.ErrUnsupportedAvatarType, http.StatusUnsupportedMediaType, app.MsgUnsupportedAvatarType},
	{service.ErrAvatarTooLarge, http.StatusRequestEntityTooLarge, app.MsgAvatarTooLarge},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrUsernameTaken, http.StatusConflict, app.MsgUsernameTaken},

	{service.ErrAvatarStorageDisabled, http.StatusServiceUnavailable, app.MsgAvatarStorageDisabled},
	{store.ErrUpstream, http.StatusBadGateway, app.MsgUpstreamFailure},
	{crypto.ErrKeyUnavailable, http.StatusBadGateway, app.MsgUpstreamFailure},

	{crypto.ErrDecode, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

func lookupError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
// Server-side failures never leak their text to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := lookupError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
