package http

import (
	"time"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/service"
)

type Handler struct {
	services *service.Services

	// pagesDir holds the pre-built pages served outside /api. Empty means
	// the server is API only.
	pagesDir       string
	secureCookies  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("pages_dir", cfg.PagesDir).Msg("http handler created")
	return &Handler{
		services:       services,
		pagesDir:       cfg.PagesDir,
		secureCookies:  cfg.SecureCookies,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
