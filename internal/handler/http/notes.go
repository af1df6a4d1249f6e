package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var input models.NoteInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("note_id", note.ID).Str("date", note.Date).Msg("note created")
	utils.WriteJSON(w, h.noteResponse(note), http.StatusCreated)
}

// listNotes returns every note of the caller, or only those between the
// inclusive from and to query parameters when either is given.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var (
		notes []models.Note
		err   error
	)
	if query.Has("from") || query.Has("to") {
		notes, err = h.services.NoteService.ListByDateRange(ctx, query.Get("from"), query.Get("to"))
	} else {
		notes, err = h.services.NoteService.List(ctx)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]models.NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, h.noteResponse(note))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.noteResponse(note), http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var update models.NoteUpdate
	if err := utils.DecodeJSON(w, r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.noteResponse(note), http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NoteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) countNotes(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.NoteService.Count(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteCountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) noteResponse(note models.Note) models.NoteResponse {
	return models.NoteResponse{
		Note:     note,
		Editable: h.services.NoteService.IsEditable(note),
	}
}
