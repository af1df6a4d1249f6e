// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// caller's credentials. Callers can match against them with [errors.Is].
var (
	// ErrNoCredentials is returned by the auth middleware when the request
	// carries neither an "Authorization" header nor a session cookie.
	ErrNoCredentials = errors.New("no `Authorization` header or session cookie")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrMissingAvatarFile is returned when a multipart upload has no
	// "avatar" part.
	ErrMissingAvatarFile = errors.New("multipart field `avatar` is required")
)
