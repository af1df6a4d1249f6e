package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNotFound   = errors.New("not found")
	ErrNoteLocked = errors.New("note can only be changed on the day it was written")

	ErrAvatarStorageDisabled = errors.New("avatar storage is not configured")
	ErrUnsupportedAvatarType = errors.New("unsupported avatar file type")
	ErrAvatarTooLarge        = errors.New("avatar is too large")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
