package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/greenwall/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator_SignUp(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.SignUpRequest
		wantErr error
	}{
		{name: "valid", req: models.SignUpRequest{Email: "fern@example.com", Password: "correct-horse", FullName: "Fern"}},
		{name: "no full name", req: models.SignUpRequest{Email: "fern@example.com", Password: "correct-horse"}},
		{name: "bad email", req: models.SignUpRequest{Email: "fern", Password: "correct-horse"}, wantErr: ErrInvalidEmail},
		{name: "display name email", req: models.SignUpRequest{Email: "Fern <fern@example.com>", Password: "correct-horse"}, wantErr: ErrInvalidEmail},
		{name: "short password", req: models.SignUpRequest{Email: "fern@example.com", Password: "short"}, wantErr: ErrInvalidPassword},
		{name: "long password", req: models.SignUpRequest{Email: "fern@example.com", Password: strings.Repeat("p", 73)}, wantErr: ErrInvalidPassword},
		{name: "long full name", req: models.SignUpRequest{Email: "fern@example.com", Password: "correct-horse", FullName: strings.Repeat("n", 101)}, wantErr: ErrFullNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_Credentials(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "a@b.io", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.Credentials{Email: "a@b.io"}), ErrInvalidPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: " a@b.io", Password: "x"}), ErrInvalidEmail)
}

func TestUserValidator_ProfileUpdate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.ProfileUpdate
		wantErr error
	}{
		{name: "empty", update: models.ProfileUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "full name", update: models.ProfileUpdate{FullName: ptr("Fern Gully")}},
		{name: "clear username", update: models.ProfileUpdate{Username: ptr("")}},
		{name: "good username", update: models.ProfileUpdate{Username: ptr("fern_01")}},
		{name: "short username", update: models.ProfileUpdate{Username: ptr("fe")}, wantErr: ErrInvalidUsername},
		{name: "username with space", update: models.ProfileUpdate{Username: ptr("fern gully")}, wantErr: ErrInvalidUsername},
		{name: "good website", update: models.ProfileUpdate{Website: ptr("https://fern.example.com")}},
		{name: "relative website", update: models.ProfileUpdate{Website: ptr("fern.example.com")}, wantErr: ErrInvalidWebsite},
		{name: "javascript website", update: models.ProfileUpdate{Website: ptr("javascript:alert(1)")}, wantErr: ErrInvalidWebsite},
		{name: "avatar path only", update: models.ProfileUpdate{AvatarPath: ptr("u/avatar.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteInput{}), ErrUnsupportedType)
}
