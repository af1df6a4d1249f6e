package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/models"
)

type profileRepository struct {
	*DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var profile models.Profile
	if err := row.Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Username,
		&profile.Website,
		&profile.AvatarPath,
		&profile.UpdatedAt,
	); err != nil {
		return models.Profile{}, err
	}

	profile.UpdatedAt = profile.UpdatedAt.UTC()
	return profile, nil
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProfileQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.GetProfile").Msg("failed to create query")
		return models.Profile{}, err
	}

	profile, err := scanProfile(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "profileRepository.GetProfile").Str("user_id", userID).Msg("failed to get profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// UpdateProfile patches the supplied fields and returns the stored profile.
// A username held by another profile yields [ErrUsernameTaken].
func (r *profileRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate, updatedAt time.Time) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(r.builder, userID, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.UpdateProfile").Msg("failed to create query")
		return models.Profile{}, err
	}

	profile, err := scanProfile(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Profile{}, ErrProfileNotFound
		case r.Classify(err) == Conflict:
			return models.Profile{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "profileRepository.UpdateProfile").Str("user_id", userID).Msg("failed to update profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return profile, nil
}
