// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/greenwall/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func strPtr(s string) *string { return &s }

func Test_buildListNotesQuery(t *testing.T) {
	tests := []struct {
		name      string
		rng       *models.DateRange
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no range",
			rng:       nil,
			wantWhere: "WHERE user_id = $1 ORDER BY",
			wantArgs:  []any{"u1"},
		},
		{
			name:      "empty range is ignored",
			rng:       &models.DateRange{},
			wantWhere: "WHERE user_id = $1 ORDER BY",
			wantArgs:  []any{"u1"},
		},
		{
			name:      "both bounds",
			rng:       &models.DateRange{From: "2026-01-01", To: "2026-01-31"},
			wantWhere: "WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY",
			wantArgs:  []any{"u1", "2026-01-01", "2026-01-31"},
		},
		{
			name:      "lower bound only",
			rng:       &models.DateRange{From: "2026-01-01"},
			wantWhere: "WHERE user_id = $1 AND date >= $2 ORDER BY",
			wantArgs:  []any{"u1", "2026-01-01"},
		},
		{
			name:      "upper bound only",
			rng:       &models.DateRange{To: "2026-01-31"},
			wantWhere: "WHERE user_id = $1 AND date <= $2 ORDER BY",
			wantArgs:  []any{"u1", "2026-01-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListNotesQuery(pgBuilder, "u1", tt.rng)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM notes")
			assert.Contains(t, query, tt.wantWhere)
			assert.True(t, strings.HasSuffix(query, "ORDER BY date DESC, created_at DESC"), query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateNoteQuery_OnlySuppliedFields(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateNoteQuery(pgBuilder, "u1", "n1", models.NoteUpdate{Mood: strPtr("happy")}, "2026-10-19", now)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE notes SET mood = $1, updated_at = $2")
	assert.Contains(t, query, "WHERE id = $3 AND user_id = $4 AND date = $5")
	assert.Contains(t, query, "RETURNING id, user_id, date, text, mood, emoji, created_at, updated_at")
	assert.NotContains(t, query, "text =")
	assert.NotContains(t, query, "emoji =")
	assert.Equal(t, []any{"happy", now, "n1", "u1", "2026-10-19"}, args)
}

func Test_buildUpdateNoteQuery_AllFields(t *testing.T) {
	now := time.Now().UTC()
	update := models.NoteUpdate{Text: strPtr("c"), Mood: strPtr("m"), Emoji: strPtr("e")}

	query, args, err := buildUpdateNoteQuery(pgBuilder, "u1", "n1", update, "2026-10-19", now)
	require.NoError(t, err)

	assert.Contains(t, query, "SET text = $1, mood = $2, emoji = $3, updated_at = $4")
	assert.Len(t, args, 7)
}

func Test_buildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery(pgBuilder, "u1", "n1", "2026-10-19")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM notes WHERE id = $1 AND user_id = $2 AND date = $3", query)
	assert.Equal(t, []any{"n1", "u1", "2026-10-19"}, args)
}

func Test_buildCountNotesQuery(t *testing.T) {
	query, args, err := buildCountNotesQuery(pgBuilder, "u1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM notes WHERE user_id = $1", query)
	assert.Equal(t, []any{"u1"}, args)
}

func Test_buildInsertNoteQuery_SQLitePlaceholders(t *testing.T) {
	now := time.Now().UTC()
	note := models.Note{ID: "n1", UserID: "u1", Date: "2026-10-19", Text: "c", Mood: "calm", Emoji: "🙂", CreatedAt: now, UpdatedAt: now}

	query, args, err := buildInsertNoteQuery(sqliteBuilder, note)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO notes (id,user_id,date,text,mood,emoji,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?)")
	assert.NotContains(t, query, "$1")
	assert.Contains(t, query, "RETURNING id")
	assert.Equal(t, []any{"n1", "u1", "2026-10-19", "c", "calm", "🙂", now, now}, args)
}

func Test_buildFindUserQuery(t *testing.T) {
	query, args, err := buildFindUserQuery(pgBuilder, "email", "a@b.c")
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, email, password_hash, created_at FROM users WHERE email = $1", query)
	assert.Equal(t, []any{"a@b.c"}, args)
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	now := time.Now().UTC()
	update := models.ProfileUpdate{Username: strPtr("gardener"), AvatarPath: strPtr("u1/avatar.png")}

	query, args, err := buildUpdateProfileQuery(pgBuilder, "u1", update, now)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE profiles SET username = $1, avatar_path = $2, updated_at = $3 WHERE id = $4")
	assert.Equal(t, []any{"gardener", "u1/avatar.png", now, "u1"}, args)
}

func Test_sqlitePath(t *testing.T) {
	tests := []struct {
		dsn      string
		wantPath string
		wantOK   bool
	}{
		{dsn: "sqlite:greenwall.db", wantPath: "greenwall.db", wantOK: true},
		{dsn: "file:greenwall.db?cache=shared", wantPath: "file:greenwall.db?cache=shared", wantOK: true},
		{dsn: "postgres://u:p@localhost/db", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			path, ok := sqlitePath(tt.dsn)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
