package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/crypto"
	"github.com/MKhiriev/greenwall/internal/handler"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/server"
	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/internal/store"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("greenwall-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	clock, err := utils.NewSystemClock(cfg.App.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading time zone")
	}

	keys, err := newKeyProvider(ctx, cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating note key provider")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, crypto.NewTextCipher(keys), clock, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newKeyProvider picks the note key source. Configuration validation
// guarantees exactly one of the passphrase and the KMS data key is set.
func newKeyProvider(ctx context.Context, cfg config.App) (crypto.KeyProvider, error) {
	if cfg.NoteEncryptionKey != "" {
		keys, err := crypto.NewPassphraseKeyProvider(cfg.NoteEncryptionKey)
		if err != nil {
			return nil, err
		}
		return keys, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	keys, err := crypto.NewKMSKeyProvider(kms.NewFromConfig(awsCfg), cfg.KMSKeyID, cfg.KMSEncryptedDataKey)
	if err != nil {
		return nil, err
	}
	return keys, nil
}
