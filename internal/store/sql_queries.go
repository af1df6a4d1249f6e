package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/greenwall/models"
	sq "github.com/Masterminds/squirrel"
)

const setOwnerQuery = `SELECT set_config('` + ownerSetting + `', $1, true);`

var (
	noteColumns    = []string{"id", "user_id", "date", "text", "mood", "emoji", "created_at", "updated_at"}
	userColumns    = []string{"id", "email", "password_hash", "created_at"}
	profileColumns = []string{"id", "full_name", "username", "website", "avatar_path", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.Insert("notes").
		Columns(noteColumns...).
		Values(note.ID, note.UserID, note.Date, note.Text, note.Mood, note.Emoji, note.CreatedAt, note.UpdatedAt).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListNotesQuery selects the owner's notes, newest day first and newest
// entry first within a day. Empty range bounds are ignored.
func buildListNotesQuery(b sq.StatementBuilderType, userID string, rng *models.DateRange) (string, []any, error) {
	qb := b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID})

	if rng != nil {
		if rng.From != "" {
			qb = qb.Where(sq.GtOrEq{"date": rng.From})
		}
		if rng.To != "" {
			qb = qb.Where(sq.LtOrEq{"date": rng.To})
		}
	}

	query, args, err := qb.OrderBy("date DESC", "created_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetNoteQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	query, args, err := b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery patches only the supplied fields. updated_at is always
// set, and the row must still carry editableOn as its date.
func buildUpdateNoteQuery(b sq.StatementBuilderType, userID, noteID string, update models.NoteUpdate, editableOn string, updatedAt time.Time) (string, []any, error) {
	qb := b.Update("notes")

	if update.Text != nil {
		qb = qb.Set("text", *update.Text)
	}
	if update.Mood != nil {
		qb = qb.Set("mood", *update.Mood)
	}
	if update.Emoji != nil {
		qb = qb.Set("emoji", *update.Emoji)
	}

	query, args, err := qb.Set("updated_at", updatedAt).
		Where(sq.Eq{"id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"date": editableOn}).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, userID, noteID, editableOn string) (string, []any, error) {
	query, args, err := b.Delete("notes").
		Where(sq.Eq{"id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"date": editableOn}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountNotesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert("users").
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertProfileQuery(b sq.StatementBuilderType, profile models.Profile) (string, []any, error) {
	query, args, err := b.Insert("profiles").
		Columns(profileColumns...).
		Values(profile.UserID, profile.FullName, profile.Username, profile.Website, profile.AvatarPath, profile.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindUserQuery looks a user up by a single unique column.
func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetProfileQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateProfileQuery(b sq.StatementBuilderType, userID string, update models.ProfileUpdate, updatedAt time.Time) (string, []any, error) {
	qb := b.Update("profiles")

	if update.FullName != nil {
		qb = qb.Set("full_name", *update.FullName)
	}
	if update.Username != nil {
		qb = qb.Set("username", *update.Username)
	}
	if update.Website != nil {
		qb = qb.Set("website", *update.Website)
	}
	if update.AvatarPath != nil {
		qb = qb.Set("avatar_path", *update.AvatarPath)
	}

	query, args, err := qb.Set("updated_at", updatedAt).
		Where(sq.Eq{"id": userID}).
		Suffix(returning(profileColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
