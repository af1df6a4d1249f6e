// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GreenWall server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when sign-in fails. It does not
	// say whether the email exists.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgUnauthenticated is returned by protected endpoints when neither a
	// bearer token nor a session cookie identifies the caller.
	MsgUnauthenticated = "authentication required"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT is either expired or
	// cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoteNotFound is returned when the note does not exist or belongs to
	// another user.
	MsgNoteNotFound = "note not found"

	// MsgNoteLocked is returned when an edit or delete targets a note that
	// was not written today.
	MsgNoteLocked = "note can only be changed on the day it was written"

	// MsgProfileNotFound is returned when the caller has no profile row.
	MsgProfileNotFound = "profile not found"

	// MsgEmailAlreadyExists is returned when sign-up uses a taken email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUsernameTaken is returned when a profile update picks a username
	// that another user already has.
	MsgUsernameTaken = "username is taken"

	// MsgAvatarStorageDisabled is returned by the avatar endpoint when no
	// bucket is configured.
	MsgAvatarStorageDisabled = "avatar storage is not configured"

	// MsgUnsupportedAvatarType is returned for uploads that are not a
	// png, jpeg, gif or webp image.
	MsgUnsupportedAvatarType = "unsupported avatar type"

	// MsgAvatarTooLarge is returned for empty uploads and uploads over 5 MiB.
	MsgAvatarTooLarge = "avatar must be between 1 byte and 5 MiB"

	// MsgUpstreamFailure is returned when object storage or KMS fails.
	MsgUpstreamFailure = "upstream service failure"
)
