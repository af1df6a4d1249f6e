// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/mock"
	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/internal/store"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "0190b6c4-1111-7000-8000-000000000001"
	testNoteID = "0190b6c4-2222-7000-8000-000000000002"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func userCtx() context.Context {
	return utils.WithUserID(context.Background(), testUserID)
}

func strPtr(s string) *string { return &s }

type noteDeps struct {
	notes  *mock.MockNoteRepository
	cipher *mock.MockTextCipher
	svc    service.NoteService
}

func newNoteDeps(t *testing.T) noteDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := noteDeps{
		notes:  mock.NewMockNoteRepository(ctrl),
		cipher: mock.NewMockTextCipher(ctrl),
	}
	d.svc = service.NewNoteService(d.notes, d.cipher, utils.FixedClock{T: testNow}, logger.Nop())
	return d
}

func storedNote(date, text string) models.Note {
	return models.Note{
		ID:        testNoteID,
		UserID:    testUserID,
		Date:      date,
		Text:      text,
		Mood:      "calm",
		Emoji:     "🌿",
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestNoteService_Create_DefaultsDateAndMood(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.cipher.EXPECT().Encrypt(ctx, "walked in the park").Return("CIPHER", nil)
	d.notes.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
		assert.Equal(t, testUserID, n.UserID)
		assert.Equal(t, "2026-03-14", n.Date)
		assert.Equal(t, "CIPHER", n.Text)
		assert.Equal(t, service.DefaultMood, n.Mood)
		assert.Equal(t, testNow, n.CreatedAt)
		n.ID = testNoteID
		return n, nil
	})
	d.cipher.EXPECT().Decrypt(ctx, "CIPHER").Return("walked in the park", nil)

	note, err := d.svc.Create(ctx, models.NoteInput{Text: "walked in the park", Emoji: "🌿"})

	require.NoError(t, err)
	assert.Equal(t, testNoteID, note.ID)
	assert.Equal(t, "walked in the park", note.Text)
	assert.Equal(t, service.DefaultMood, note.Mood)
}

func TestNoteService_Create_KeepsExplicitDate(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.cipher.EXPECT().Encrypt(ctx, "late entry").Return("C", nil)
	d.notes.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
		assert.Equal(t, "2026-03-10", n.Date)
		assert.Equal(t, "joyful", n.Mood)
		return n, nil
	})
	d.cipher.EXPECT().Decrypt(ctx, "C").Return("late entry", nil)

	_, err := d.svc.Create(ctx, models.NoteInput{Text: "late entry", Mood: "joyful", Emoji: "😊", Date: "2026-03-10"})
	require.NoError(t, err)
}

func TestNoteService_Create_EncryptFailure_NothingStored(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.cipher.EXPECT().Encrypt(ctx, gomock.Any()).Return("", errors.New("kms unavailable"))

	_, err := d.svc.Create(ctx, models.NoteInput{Text: "x", Emoji: "🌿"})
	require.Error(t, err)
}

func TestNoteService_Unauthenticated(t *testing.T) {
	d := newNoteDeps(t)
	ctx := context.Background()

	_, err := d.svc.Create(ctx, models.NoteInput{Text: "x", Emoji: "🌿"})
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	_, err = d.svc.List(ctx)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	_, err = d.svc.Get(ctx, testNoteID)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	assert.ErrorIs(t, d.svc.Delete(ctx, testNoteID), service.ErrUnauthenticated)

	_, err = d.svc.Count(ctx)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

// ─────────────────────────────────────────────
// List / Get / Count
// ─────────────────────────────────────────────

func TestNoteService_List_DecryptsEveryNote(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().ListNotes(ctx, testUserID, nil).Return([]models.Note{
		storedNote("2026-03-14", "C2"),
		storedNote("2026-03-13", "C1"),
	}, nil)
	d.cipher.EXPECT().Decrypt(ctx, "C2").Return("second", nil)
	d.cipher.EXPECT().Decrypt(ctx, "C1").Return("first", nil)

	notes, err := d.svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Text)
	assert.Equal(t, "first", notes[1].Text)
}

func TestNoteService_List_Empty(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().ListNotes(ctx, testUserID, nil).Return(nil, nil)

	notes, err := d.svc.List(ctx)

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteService_List_DecryptFailureFailsWholeCall(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().ListNotes(ctx, testUserID, nil).Return([]models.Note{storedNote("2026-03-14", "bad")}, nil)
	d.cipher.EXPECT().Decrypt(ctx, "bad").Return("", errors.New("decode"))

	notes, err := d.svc.List(ctx)

	require.Error(t, err)
	assert.Nil(t, notes)
}

func TestNoteService_ListByDateRange_PassesRange(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().
		ListNotes(ctx, testUserID, &models.DateRange{From: "2026-03-01", To: "2026-03-31"}).
		Return([]models.Note{}, nil)

	notes, err := d.svc.ListByDateRange(ctx, "2026-03-01", "2026-03-31")

	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteService_Get_NotFound(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().GetNote(ctx, testUserID, testNoteID).Return(models.Note{}, store.ErrNoteNotFound)

	_, err := d.svc.Get(ctx, testNoteID)

	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_Count(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().CountNotes(ctx, testUserID).Return(int64(7), nil)

	count, err := d.svc.Count(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

// ─────────────────────────────────────────────
// Update / Delete and the edit window
// ─────────────────────────────────────────────

func TestNoteService_Update_Today(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().GetNote(ctx, testUserID, testNoteID).Return(storedNote("2026-03-14", "OLD"), nil)
	d.cipher.EXPECT().Encrypt(ctx, "rewritten").Return("NEW", nil)
	d.notes.EXPECT().
		UpdateNote(ctx, testUserID, testNoteID, gomock.Any(), "2026-03-14", testNow).
		DoAndReturn(func(_ context.Context, _, _ string, u models.NoteUpdate, _ string, _ time.Time) (models.Note, error) {
			require.NotNil(t, u.Text)
			assert.Equal(t, "NEW", *u.Text)
			assert.Nil(t, u.Mood)
			return storedNote("2026-03-14", "NEW"), nil
		})
	d.cipher.EXPECT().Decrypt(ctx, "NEW").Return("rewritten", nil)

	note, err := d.svc.Update(ctx, testNoteID, models.NoteUpdate{Text: strPtr("rewritten")})

	require.NoError(t, err)
	assert.Equal(t, "rewritten", note.Text)
}

func TestNoteService_Update_MoodOnlySkipsEncryption(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().GetNote(ctx, testUserID, testNoteID).Return(storedNote("2026-03-14", "C"), nil)
	d.notes.EXPECT().
		UpdateNote(ctx, testUserID, testNoteID, models.NoteUpdate{Mood: strPtr("tired")}, "2026-03-14", testNow).
		Return(storedNote("2026-03-14", "C"), nil)
	d.cipher.EXPECT().Decrypt(ctx, "C").Return("text", nil)

	_, err := d.svc.Update(ctx, testNoteID, models.NoteUpdate{Mood: strPtr("tired")})
	require.NoError(t, err)
}

func TestNoteService_Update_PastNoteIsLocked(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().GetNote(ctx, testUserID, testNoteID).Return(storedNote("2026-03-13", "C"), nil)

	_, err := d.svc.Update(ctx, testNoteID, models.NoteUpdate{Text: strPtr("too late")})

	assert.ErrorIs(t, err, service.ErrNoteLocked)
}

func TestNoteService_Update_ConcurrentDelete(t *testing.T) {
	d := newNoteDeps(t)
	ctx := userCtx()

	d.notes.EXPECT().GetNote(ctx, testUserID, testNoteID).Return(storedNote("2026-03-14", "C"), nil)
	d.notes.EXPECT().
		UpdateNote(ctx, testUserID, testNoteID, gomock.Any(), "2026-03-14", testNow).
		Return(models.Note{}, store.ErrNoteNotFound)

	_, err := d.svc.Update(ctx, testNoteID, models.NoteUpdate{Mood: strPtr("x")})

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		getErr  error
		delErr  error
		wantErr error
		deletes bool
	}{
		{name: "today", date: "2026-03-14", deletes: true},
		{name: "yesterday is locked", date: "2026-03-13", wantErr: service.ErrNoteLocked},
		{name: "missing", getErr: store.ErrNoteNotFound, wantErr: service.ErrNotFound},
		{name: "second delete", date: "2026-03-14", deletes: true, delErr: store.ErrNoteNotFound, wantErr: service.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newNoteDeps(t)
			ctx := userCtx()

			d.notes.EXPECT().GetNote(ctx, testUserID, testNoteID).Return(storedNote(tt.date, "C"), tt.getErr)
			if tt.deletes {
				d.notes.EXPECT().DeleteNote(ctx, testUserID, testNoteID, "2026-03-14").Return(tt.delErr)
			}

			err := d.svc.Delete(ctx, testNoteID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoteService_IsEditable(t *testing.T) {
	d := newNoteDeps(t)

	assert.True(t, d.svc.IsEditable(models.Note{Date: "2026-03-14"}))
	assert.False(t, d.svc.IsEditable(models.Note{Date: "2026-03-13"}))
	assert.False(t, d.svc.IsEditable(models.Note{Date: "garbage"}))
}
