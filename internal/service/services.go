package service

import (
	"github.com/MKhiriev/device-notes/internal/config"
	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/store"
)

type Services struct {
	NotesService NotesService
	Permissions  PermissionEvaluator
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	permissions := NewPermissionEvaluator(cfg.App.PermissionsEnforced(), logger)
	notes := NewNotesService(storages.NotesRepository, permissions, logger)

	return &Services{
		NotesService: NewNotesValidationService().Wrap(notes),
		Permissions:  permissions,
	}
}
