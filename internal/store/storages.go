package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/logger"
)

// Storages bundles every persistence dependency of the service layer.
// AvatarStorage is nil when no bucket is configured.
type Storages struct {
	NoteRepository    NoteRepository
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	AvatarStorage     AvatarStorage

	db *DB
}

// NewStorages connects to the database, applies migrations and wires the
// repositories. Avatar storage is set up only when a bucket is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		NoteRepository:    NewNoteRepository(db, log),
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		db:                db,
	}

	if cfg.Avatars.Bucket != "" {
		storages.AvatarStorage, err = NewS3AvatarStorage(ctx, cfg.Avatars, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return storages, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
