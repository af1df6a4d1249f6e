package validators

import (
	"context"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/greenwall/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldUsername = "username"
	FieldWebsite  = "website"
)

const (
	MinPasswordLength = 8
	// MaxPasswordLength is the bcrypt input limit.
	MaxPasswordLength = 72
	MaxFullNameLength = 100
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

// UserValidator validates account and profile inputs: SignUpRequest,
// Credentials and ProfileUpdate.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignUp(_ context.Context, req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) < MinPasswordLength || len(req.Password) > MaxPasswordLength {
				return ErrInvalidPassword
			}
		case FieldFullName:
			if utf8.RuneCountInString(req.FullName) > MaxFullNameLength {
				return ErrFullNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials only checks shape; length rules are not applied so
// that sign-in never reveals which rule an account was created under.
func (v *UserValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" || len(creds.Password) > MaxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateProfileUpdate(_ context.Context, update models.ProfileUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldUsername, FieldWebsite}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if update.FullName != nil && utf8.RuneCountInString(*update.FullName) > MaxFullNameLength {
				return ErrFullNameTooLong
			}
		case FieldUsername:
			if update.Username != nil && *update.Username != "" && !usernamePattern.MatchString(*update.Username) {
				return ErrInvalidUsername
			}
		case FieldWebsite:
			if update.Website != nil && *update.Website != "" && !isWebURL(*update.Website) {
				return ErrInvalidWebsite
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
