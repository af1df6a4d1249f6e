package validators

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/greenwall/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldText targets the note body.
	FieldText = "text"

	// FieldMood targets the free-text mood label.
	FieldMood = "mood"

	// FieldEmoji targets the mood marker glyph.
	FieldEmoji = "emoji"

	// FieldDate targets the optional calendar day of a new note.
	FieldDate = "date"

	// FieldRange targets the bounds of a date range. Either may be empty.
	FieldRange = "range"
)

const (
	MaxTextLength  = 5000 // runes
	MaxMoodLength  = 32   // runes
	MaxEmojiLength = 16   // bytes
)

// NoteValidator implements the Validator interface for note inputs:
// NoteInput, NoteUpdate and DateRange. Both value and pointer forms
// are accepted.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput:
		return v.validateNoteInput(ctx, value, fields...)
	case *models.NoteInput:
		return v.validateNoteInput(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case models.DateRange:
		return v.validateDateRange(ctx, value, fields...)
	case *models.DateRange:
		return v.validateDateRange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteInput(_ context.Context, input models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldMood, FieldEmoji, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if err := validateText(input.Text); err != nil {
				return err
			}
		case FieldMood:
			if err := validateMood(input.Mood); err != nil {
				return err
			}
		case FieldEmoji:
			if err := validateEmoji(input.Emoji); err != nil {
				return err
			}
		case FieldDate:
			if input.Date != "" && !isDate(input.Date) {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldText, FieldMood, FieldEmoji}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if update.Text != nil {
				if err := validateText(*update.Text); err != nil {
					return err
				}
			}
		case FieldMood:
			if update.Mood != nil {
				if err := validateMood(*update.Mood); err != nil {
					return err
				}
			}
		case FieldEmoji:
			if update.Emoji != nil {
				if err := validateEmoji(*update.Emoji); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateDateRange(_ context.Context, r models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRange}
	}

	for _, f := range fields {
		switch f {
		case FieldRange:
			// An empty bound leaves that side of the range open.
			if (r.From != "" && !isDate(r.From)) || (r.To != "" && !isDate(r.To)) {
				return ErrInvalidDate
			}
			// Same layout, so lexical order is chronological order.
			if r.From != "" && r.To != "" && r.From > r.To {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

func validateMood(mood string) error {
	if utf8.RuneCountInString(mood) > MaxMoodLength {
		return ErrMoodTooLong
	}
	return nil
}

func validateEmoji(emoji string) error {
	if strings.TrimSpace(emoji) == "" || len(emoji) > MaxEmojiLength || !utf8.ValidString(emoji) {
		return ErrInvalidEmoji
	}
	return nil
}

func isDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
