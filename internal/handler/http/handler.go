package http

import (
	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/service"
	"github.com/MKhiriev/device-notes/models"
)

type Handler struct {
	services *service.Services

	// tokenSignKey verifies the platform-issued actor context token.
	tokenSignKey string

	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, tokenSignKey string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: tokenSignKey,
		buildInfo:    buildInfo,
		logger:       logger,
	}
}
