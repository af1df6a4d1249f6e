package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/greenwall/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists notes. Every method is scoped to the owner passed
// in; a note owned by someone else behaves exactly like a missing one.
// Note.Text is ciphertext on both sides of this interface.
type NoteRepository interface {
	// CreateNote inserts note and returns the stored row with its new ID.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// ListNotes returns the owner's notes, newest day first. A nil rng lists
	// everything.
	ListNotes(ctx context.Context, userID string, rng *models.DateRange) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	// UpdateNote applies update only while the note is still dated
	// editableOn, and always stamps updatedAt.
	UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate, editableOn string, updatedAt time.Time) (models.Note, error)
	// DeleteNote removes the note only while it is still dated editableOn.
	DeleteNote(ctx context.Context, userID, noteID, editableOn string) error
	CountNotes(ctx context.Context, userID string) (int64, error)
}

// UserRepository manages accounts.
type UserRepository interface {
	// CreateUser inserts the user and its profile in one transaction.
	CreateUser(ctx context.Context, user models.User, profile models.Profile) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ProfileRepository reads and patches profiles.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate, updatedAt time.Time) (models.Profile, error)
}

// AvatarStorage keeps avatar images in object storage.
type AvatarStorage interface {
	// Put uploads body under key, overwriting any existing object.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	// SignedURL returns a time-limited GET URL for key.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
