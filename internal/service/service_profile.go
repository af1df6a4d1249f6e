package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/store"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/internal/validators"
	"github.com/MKhiriev/greenwall/models"
)

// MaxAvatarSize is the largest accepted avatar upload.
const MaxAvatarSize = 5 << 20

var avatarExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// AvatarKey is the object key of a user's avatar. There is one avatar per
// user; uploading again overwrites it.
func AvatarKey(userID, ext string) string {
	return userID + "/avatar" + ext
}

type profileService struct {
	profiles store.ProfileRepository
	// avatars is nil when no bucket is configured.
	avatars      store.AvatarStorage
	signedURLTTL time.Duration

	validator validators.Validator
	clock     utils.Clock
	logger    *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, avatars store.AvatarStorage, cfg config.Avatars, clock utils.Clock, logger *logger.Logger) ProfileService {
	ttl := cfg.SignedURLTTL
	if ttl <= 0 {
		ttl = config.DefaultSignedURLTTL
	}

	return &profileService{
		profiles:     profiles,
		avatars:      avatars,
		signedURLTTL: ttl,
		validator:    validators.NewUserValidator(),
		clock:        clock,
		logger:       logger,
	}
}

func profileNotFound(err error) error {
	if errors.Is(err, store.ErrProfileNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func (s *profileService) GetProfile(ctx context.Context) (models.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, profileNotFound(err)
	}

	return s.withAvatarURL(ctx, profile)
}

// UpdateProfile patches full name, username and website. The avatar path
// can only be changed through UploadAvatar.
func (s *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	update.AvatarPath = nil
	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile, err := s.profiles.UpdateProfile(ctx, userID, update, s.clock.Now().UTC())
	if err != nil {
		return models.Profile{}, profileNotFound(err)
	}

	return s.withAvatarURL(ctx, profile)
}

// UploadAvatar stores body at {userID}/avatar.{ext}, records the key on the
// profile and returns a freshly signed URL.
func (s *profileService) UploadAvatar(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	log := logger.FromContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return "", err
	}

	if s.avatars == nil {
		return "", ErrAvatarStorageDisabled
	}

	ext := strings.ToLower(path.Ext(filename))
	if !avatarExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAvatarType, ext)
	}
	if size <= 0 || size > MaxAvatarSize {
		return "", ErrAvatarTooLarge
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(ext)
	}

	key := AvatarKey(userID, ext)
	if err = s.avatars.Put(ctx, key, contentType, body, size); err != nil {
		return "", err
	}

	if _, err = s.profiles.UpdateProfile(ctx, userID, models.ProfileUpdate{AvatarPath: &key}, s.clock.Now().UTC()); err != nil {
		log.Err(err).Str("func", "profileService.UploadAvatar").Str("key", key).Msg("avatar uploaded but profile not updated")
		return "", profileNotFound(err)
	}

	return s.avatars.SignedURL(ctx, key, s.signedURLTTL)
}

func (s *profileService) withAvatarURL(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if profile.AvatarPath == "" || s.avatars == nil {
		return profile, nil
	}

	url, err := s.avatars.SignedURL(ctx, profile.AvatarPath, s.signedURLTTL)
	if err != nil {
		return models.Profile{}, err
	}

	profile.AvatarURL = url
	return profile, nil
}
