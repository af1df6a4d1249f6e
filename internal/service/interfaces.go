package service

import (
	"context"
	"io"

	"github.com/MKhiriev/greenwall/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the owner-scoped note API. The caller is read from the
// context; every method fails with ErrUnauthenticated when it is absent.
// Note.Text is plaintext on every value passed in or returned.
type NoteService interface {
	Create(ctx context.Context, input models.NoteInput) (models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	ListByDateRange(ctx context.Context, from, to string) ([]models.Note, error)
	Get(ctx context.Context, id string) (models.Note, error)
	Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	// IsEditable reports whether note can still be updated or deleted today.
	IsEditable(note models.Note) bool
}

type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	SignIn(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context) (models.User, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	// UploadAvatar stores the image and returns a signed URL for it.
	UploadAvatar(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
