package models

import "time"

// DateLayout is the calendar-day format used for [Note.Date] and for every
// date accepted or returned by the API.
const DateLayout = time.DateOnly

// Note is a single journal reflection owned by one user.
//
// Text is plaintext on every value handed out by the service layer. The
// store layer works with the same struct but Text then holds ciphertext.
type Note struct {
	// ID is the store-assigned identifier (UUID v7).
	ID string `json:"id"`

	// UserID identifies the owner. Set once on creation and never changed.
	UserID string `json:"user_id"`

	// Date is the calendar day (YYYY-MM-DD) the note belongs to.
	// Defaults to the creation day and is not altered by later edits.
	Date string `json:"date"`

	// Text is the user-authored body.
	Text string `json:"text"`

	// Mood is a short free-text label used for display styling.
	Mood string `json:"mood"`

	// Emoji is the single-glyph mood marker picked by the user.
	Emoji string `json:"emoji"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteInput carries the fields accepted when a note is created.
type NoteInput struct {
	Text  string `json:"text"`
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`

	// Date is optional; an empty value means "today".
	Date string `json:"date,omitempty"`
}

// NoteUpdate is a partial update. Nil fields are left untouched.
// Date and owner are deliberately absent: they cannot be changed.
type NoteUpdate struct {
	Text  *string `json:"text,omitempty"`
	Mood  *string `json:"mood,omitempty"`
	Emoji *string `json:"emoji,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Text == nil && u.Mood == nil && u.Emoji == nil
}

// DateRange bounds a note listing by calendar day, both ends inclusive.
type DateRange struct {
	From string
	To   string
}

// NoteResponse is the API shape of a note: the note itself plus whether it
// can still be edited or deleted today.
type NoteResponse struct {
	Note

	Editable bool `json:"editable"`
}

// NoteCountResponse is returned by the note count endpoint.
type NoteCountResponse struct {
	Count int64 `json:"count"`
}
