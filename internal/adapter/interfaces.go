// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client for the greenwall REST API.
//
// [Client] hides resty and the wire format from callers. Non-2xx responses
// are turned into the sentinel errors from errors.go, so callers can use
// [errors.Is] (e.g. [ErrForbidden] for a locked note, [ErrConflict] for a
// taken email).
package adapter

import (
	"context"

	"github.com/MKhiriev/greenwall/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Client talks to the greenwall server on behalf of one user.
type Client interface {
	// SetToken stores the session token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored session token, or "" before sign-in.
	Token() string

	// SignUp registers a new account and stores the issued token.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn authenticates and stores the issued token.
	SignIn(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateNote writes a note for today, or for input.Date when set.
	CreateNote(ctx context.Context, input models.NoteInput) (models.NoteResponse, error)

	// ListNotes returns the caller's notes, newest first. Empty from and to
	// mean no bound on that side; both empty lists everything.
	ListNotes(ctx context.Context, from, to string) ([]models.NoteResponse, error)

	GetNote(ctx context.Context, id string) (models.NoteResponse, error)

	// UpdateNote patches the note. Notes outside the edit window come back
	// as ErrForbidden.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.NoteResponse, error)

	DeleteNote(ctx context.Context, id string) error

	CountNotes(ctx context.Context) (int64, error)

	// Version returns the server's version and build info.
	Version(ctx context.Context) (models.VersionResponse, error)
}
