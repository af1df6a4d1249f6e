package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText        = errors.New("note text is required")
	ErrTextTooLong      = errors.New("note text is too long")
	ErrMoodTooLong      = errors.New("mood is too long")
	ErrInvalidEmoji     = errors.New("emoji must be a short non-empty marker")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDateRange = errors.New("date range start must not be after its end")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must be between 8 and 72 bytes")
	ErrFullNameTooLong = errors.New("full name is too long")
	ErrInvalidUsername = errors.New("username must be 3-32 letters, digits, '_' or '-'")
	ErrInvalidWebsite  = errors.New("website must be an absolute http(s) URL")
)
