package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/greenwall/internal/crypto"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/store"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/internal/validators"
	"github.com/MKhiriev/greenwall/models"
)

// DefaultMood is stored when a note is created without a mood.
const DefaultMood = "calm"

// noteService applies the text cipher and the edit window on top of a
// [store.NoteRepository]. Input validation lives in [NoteValidationService].
type noteService struct {
	notes  store.NoteRepository
	cipher crypto.TextCipher
	clock  utils.Clock
	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, cipher crypto.TextCipher, clock utils.Clock, logger *logger.Logger) NoteService {
	return &noteService{
		notes:  notes,
		cipher: cipher,
		clock:  clock,
		logger: logger,
	}
}

func ownerFromContext(ctx context.Context) (string, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	return userID, nil
}

func notFound(err error) error {
	if errors.Is(err, store.ErrNoteNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

// Create stores a new note dated input.Date, or today when it is empty.
// Encryption happens before anything is written.
func (s *noteService) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Note{}, err
	}

	now := s.clock.Now()

	date := input.Date
	if date == "" {
		date = now.Format(models.DateLayout)
	}

	mood := input.Mood
	if strings.TrimSpace(mood) == "" {
		mood = DefaultMood
	}

	ciphertext, err := s.cipher.Encrypt(ctx, input.Text)
	if err != nil {
		log.Err(err).Str("func", "noteService.Create").Str("user_id", userID).Msg("failed to encrypt note")
		return models.Note{}, fmt.Errorf("encrypting note: %w", err)
	}

	stored, err := s.notes.CreateNote(ctx, models.Note{
		UserID:    userID,
		Date:      date,
		Text:      ciphertext,
		Mood:      mood,
		Emoji:     input.Emoji,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("creating note: %w", err)
	}

	return s.decrypt(ctx, stored)
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	return s.list(ctx, nil)
}

// ListByDateRange lists notes dated between from and to, both inclusive.
func (s *noteService) ListByDateRange(ctx context.Context, from, to string) ([]models.Note, error) {
	return s.list(ctx, &models.DateRange{From: from, To: to})
}

func (s *noteService) list(ctx context.Context, rng *models.DateRange) ([]models.Note, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.notes.ListNotes(ctx, userID, rng)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	notes := make([]models.Note, 0, len(stored))
	for _, n := range stored {
		note, err := s.decrypt(ctx, n)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func (s *noteService) Get(ctx context.Context, id string) (models.Note, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Note{}, err
	}

	stored, err := s.notes.GetNote(ctx, userID, id)
	if err != nil {
		return models.Note{}, notFound(err)
	}

	return s.decrypt(ctx, stored)
}

// Update patches the supplied fields of a note written today. Text is
// re-encrypted when present; updated_at always moves forward.
func (s *noteService) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Note{}, err
	}

	current, err := s.notes.GetNote(ctx, userID, id)
	if err != nil {
		return models.Note{}, notFound(err)
	}

	now := s.clock.Now()
	if !validators.IsMutable(current, now) {
		return models.Note{}, ErrNoteLocked
	}

	if update.Text != nil {
		ciphertext, err := s.cipher.Encrypt(ctx, *update.Text)
		if err != nil {
			log.Err(err).Str("func", "noteService.Update").Str("note_id", id).Msg("failed to encrypt note")
			return models.Note{}, fmt.Errorf("encrypting note: %w", err)
		}
		update.Text = &ciphertext
	}

	stored, err := s.notes.UpdateNote(ctx, userID, id, update, now.Format(models.DateLayout), now.UTC())
	if err != nil {
		return models.Note{}, notFound(err)
	}

	return s.decrypt(ctx, stored)
}

// Delete removes a note written today. A second delete of the same id
// reports ErrNotFound.
func (s *noteService) Delete(ctx context.Context, id string) error {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	current, err := s.notes.GetNote(ctx, userID, id)
	if err != nil {
		return notFound(err)
	}

	now := s.clock.Now()
	if !validators.IsMutable(current, now) {
		return ErrNoteLocked
	}

	if err = s.notes.DeleteNote(ctx, userID, id, now.Format(models.DateLayout)); err != nil {
		return notFound(err)
	}

	return nil
}

func (s *noteService) Count(ctx context.Context) (int64, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return 0, err
	}

	count, err := s.notes.CountNotes(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}

	return count, nil
}

func (s *noteService) IsEditable(note models.Note) bool {
	return validators.IsMutable(note, s.clock.Now())
}

func (s *noteService) decrypt(ctx context.Context, note models.Note) (models.Note, error) {
	plaintext, err := s.cipher.Decrypt(ctx, note.Text)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteService.decrypt").
			Str("note_id", note.ID).
			Msg("failed to decrypt note")
		return models.Note{}, fmt.Errorf("decrypting note %s: %w", note.ID, err)
	}

	note.Text = plaintext
	return note, nil
}
