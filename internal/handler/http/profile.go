package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
)

const (
	avatarFormField = "avatar"
	// multipartOverhead leaves room for boundaries and part headers.
	multipartOverhead = 1 << 20
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfile(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := utils.DecodeJSON(w, r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxAvatarSize+multipartOverhead)

	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, r, service.ErrAvatarTooLarge)
		case errors.Is(err, http.ErrMissingFile):
			writeError(w, r, ErrMissingAvatarFile)
		default:
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		}
		return
	}
	defer file.Close()

	url, err := h.services.ProfileService.UploadAvatar(r.Context(), header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AvatarResponse{AvatarURL: url}, http.StatusOK)
}
