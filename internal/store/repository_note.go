package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. Each call is
// one short transaction opened through [DB.withOwnerTx], so PostgreSQL's
// row-level security sees the same owner as the WHERE clauses.
type noteRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note models.Note
		date time.Time
	)

	if err := row.Scan(
		&note.ID,
		&note.UserID,
		&date,
		&note.Text,
		&note.Mood,
		&note.Emoji,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		return models.Note{}, err
	}

	note.Date = date.Format(models.DateLayout)
	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()

	return note, nil
}

// CreateNote assigns a fresh ID and inserts the note.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.ID = r.ids.Generate()

	query, args, err := buildInsertNoteQuery(r.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to create query")
		return models.Note{}, err
	}

	var created models.Note
	err = r.withOwnerTx(ctx, note.UserID, func(tx *sql.Tx) error {
		var scanErr error
		created, scanErr = scanNote(tx.QueryRowContext(ctx, query, args...))
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.CreateNote").
				Str("user_id", note.UserID).
				Msg("failed to insert note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// ListNotes returns the owner's notes ordered by date and then creation time,
// both descending. Returns an empty slice when nothing matches.
func (r *noteRepository) ListNotes(ctx context.Context, userID string, rng *models.DateRange) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.builder, userID, rng)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to create query")
		return nil, err
	}

	notes := make([]models.Note, 0, 32)
	err = r.withOwnerTx(ctx, userID, func(tx *sql.Tx) error {
		rows, queryErr := tx.QueryContext(ctx, query, args...)
		if queryErr != nil {
			log.Err(queryErr).
				Str("func", "noteRepository.ListNotes").
				Str("user_id", userID).
				Msg("failed to execute query for listing notes")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			note, scanErr := scanNote(rows)
			if scanErr != nil {
				log.Err(scanErr).
					Str("func", "noteRepository.ListNotes").
					Str("user_id", userID).
					Msg("failed to scan note row")
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			notes = append(notes, note)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			log.Err(rowsErr).
				Str("func", "noteRepository.ListNotes").
				Str("user_id", userID).
				Msg("error occurred during rows iteration")
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(r.builder, userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Msg("failed to create query")
		return models.Note{}, err
	}

	var note models.Note
	err = r.withOwnerTx(ctx, userID, func(tx *sql.Tx) error {
		var scanErr error
		note, scanErr = scanNote(tx.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			return ErrNoteNotFound
		case scanErr != nil:
			log.Err(scanErr).
				Str("func", "noteRepository.GetNote").
				Str("user_id", userID).
				Str("note_id", noteID).
				Msg("failed to get note")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote returns [ErrNoteNotFound] when no row matched: the note is
// missing, foreign, or no longer dated editableOn.
func (r *noteRepository) UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate, editableOn string, updatedAt time.Time) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.builder, userID, noteID, update, editableOn, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to create query")
		return models.Note{}, err
	}

	var note models.Note
	err = r.withOwnerTx(ctx, userID, func(tx *sql.Tx) error {
		var scanErr error
		note, scanErr = scanNote(tx.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			return ErrNoteNotFound
		case scanErr != nil:
			log.Err(scanErr).
				Str("func", "noteRepository.UpdateNote").
				Str("user_id", userID).
				Str("note_id", noteID).
				Msg("failed to update note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote returns [ErrNoteNotFound] when no row was removed.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID, editableOn string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.builder, userID, noteID, editableOn)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to create query")
		return err
	}

	return r.withOwnerTx(ctx, userID, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "noteRepository.DeleteNote").
				Str("user_id", userID).
				Str("note_id", noteID).
				Msg("failed to delete note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, rowsErr)
		}
		if affected == 0 {
			return ErrNoteNotFound
		}
		return nil
	})
}

func (r *noteRepository) CountNotes(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountNotesQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CountNotes").Msg("failed to create query")
		return 0, err
	}

	var count int64
	err = r.withOwnerTx(ctx, userID, func(tx *sql.Tx) error {
		if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&count); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.CountNotes").
				Str("user_id", userID).
				Msg("failed to count notes")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
