package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/greenwall/internal/mock"
	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/internal/validators"
	"github.com/MKhiriev/greenwall/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatedNoteService(t *testing.T) (service.NoteService, *mock.MockNoteService) {
	t.Helper()
	inner := mock.NewMockNoteService(gomock.NewController(t))
	return service.NewNoteValidationService().Wrap(inner), inner
}

func TestNoteValidationService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   models.NoteInput
		wantErr error
	}{
		{name: "valid", input: models.NoteInput{Text: "ok", Emoji: "🌿"}},
		{name: "blank text", input: models.NoteInput{Text: "   ", Emoji: "🌿"}, wantErr: validators.ErrEmptyText},
		{name: "text too long", input: models.NoteInput{Text: strings.Repeat("a", validators.MaxTextLength+1), Emoji: "🌿"}, wantErr: validators.ErrTextTooLong},
		{name: "missing emoji", input: models.NoteInput{Text: "ok"}, wantErr: validators.ErrInvalidEmoji},
		{name: "bad date", input: models.NoteInput{Text: "ok", Emoji: "🌿", Date: "14/03/2026"}, wantErr: validators.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newValidatedNoteService(t)
			ctx := context.Background()

			if tt.wantErr == nil {
				inner.EXPECT().Create(ctx, tt.input).Return(models.Note{ID: testNoteID}, nil)
			}

			_, err := svc.Create(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNoteValidationService_NonUUIDIsNotFound(t *testing.T) {
	svc, _ := newValidatedNoteService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "42")
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Update(ctx, "../etc", models.NoteUpdate{Text: strPtr("x")})
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, ""), service.ErrNotFound)
}

func TestNoteValidationService_Update_EmptyPatch(t *testing.T) {
	svc, _ := newValidatedNoteService(t)

	_, err := svc.Update(context.Background(), testNoteID, models.NoteUpdate{})

	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
}

func TestNoteValidationService_ListByDateRange(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()

	_, err := svc.ListByDateRange(ctx, "2026-03-31", "2026-03-01")
	assert.ErrorIs(t, err, validators.ErrInvalidDateRange)

	_, err = svc.ListByDateRange(ctx, "March", "2026-03-01")
	assert.ErrorIs(t, err, validators.ErrInvalidDate)

	inner.EXPECT().ListByDateRange(ctx, "", "2026-03-01").Return([]models.Note{}, nil)
	_, err = svc.ListByDateRange(ctx, "", "2026-03-01")
	assert.NoError(t, err)

	inner.EXPECT().ListByDateRange(ctx, "2026-03-01", "2026-03-01").Return([]models.Note{}, nil)
	_, err = svc.ListByDateRange(ctx, "2026-03-01", "2026-03-01")
	assert.NoError(t, err)
}

func TestNoteValidationService_PassThrough(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()
	note := models.Note{Date: "2026-03-14"}

	inner.EXPECT().List(ctx).Return(nil, nil)
	inner.EXPECT().Count(ctx).Return(int64(3), nil)
	inner.EXPECT().Delete(ctx, testNoteID).Return(nil)
	inner.EXPECT().IsEditable(note).Return(true)

	_, err := svc.List(ctx)
	require.NoError(t, err)
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, svc.Delete(ctx, testNoteID))
	assert.True(t, svc.IsEditable(note))
}
