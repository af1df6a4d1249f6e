package service

import (
	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/crypto"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/store"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cipher crypto.TextCipher, clock utils.Clock, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, clock, logger),
		NoteService:    NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, cipher, clock, logger)),
		ProfileService: NewProfileService(storages.ProfileRepository, storages.AvatarStorage, cfg.Storage.Avatars, clock, logger),
		AppInfoService: appInfo,
	}, nil
}
