package models

import "time"

// Profile holds the public, user-editable details of an account.
// It is stored one-to-one with [User] and shares its identifier.
type Profile struct {
	UserID   string `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Website  string `json:"website"`

	// AvatarPath is the object key of the avatar in the avatars bucket.
	// Only the key is persisted; AvatarURL is signed on every read.
	AvatarPath string `json:"-"`

	// AvatarURL is a time-limited signed retrieval URL. Empty when the
	// user has no avatar or avatar storage is not configured.
	AvatarURL string `json:"avatar_url,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate is a partial profile update. Nil fields are left untouched.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Username *string `json:"username,omitempty"`
	Website  *string `json:"website,omitempty"`

	// AvatarPath is set by the avatar upload flow, never by API callers.
	AvatarPath *string `json:"-"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Username == nil && u.Website == nil && u.AvatarPath == nil
}

// AvatarResponse is returned after a successful avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
