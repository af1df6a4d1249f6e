package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/internal/validators"
	"github.com/MKhiriev/greenwall/models"
)

// NoteValidationService checks note inputs before they reach the wrapped
// NoteService. Ids that are not UUIDs cannot name a note and are reported as
// ErrNotFound without a store round trip.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, input)
}

func (v *NoteValidationService) List(ctx context.Context) ([]models.Note, error) {
	return v.inner.List(ctx)
}

func (v *NoteValidationService) ListByDateRange(ctx context.Context, from, to string) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, models.DateRange{From: from, To: to}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListByDateRange(ctx, from, to)
}

func (v *NoteValidationService) Get(ctx context.Context, id string) (models.Note, error) {
	if !utils.IsUUID(id) {
		return models.Note{}, ErrNotFound
	}

	return v.inner.Get(ctx, id)
}

func (v *NoteValidationService) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	if !utils.IsUUID(id) {
		return models.Note{}, ErrNotFound
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, update)
}

func (v *NoteValidationService) Delete(ctx context.Context, id string) error {
	if !utils.IsUUID(id) {
		return ErrNotFound
	}

	return v.inner.Delete(ctx, id)
}

func (v *NoteValidationService) Count(ctx context.Context) (int64, error) {
	return v.inner.Count(ctx)
}

func (v *NoteValidationService) IsEditable(note models.Note) bool {
	return v.inner.IsEditable(note)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
