package store

import (
	"context"

	"github.com/MKhiriev/device-notes/internal/config"
	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/utils"
)

type Storages struct {
	Documents       DocumentStore
	NotesRepository NotesRepository
}

// NewStorages wires the configured document store backend (MongoDB, or the
// in-process store when cfg.Documents.InMemory is set) and the notes
// repository on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, clock utils.Clock, logger *logger.Logger) (*Storages, error) {
	var documents DocumentStore
	var err error

	if cfg.Documents.InMemory {
		documents = NewMemoryDocumentStore()
		logger.Warn().Msg("using in-process document store: data will not survive a restart")
	} else {
		documents, err = NewMongoDocumentStore(ctx, cfg.Documents, logger)
		if err != nil {
			return nil, err
		}
	}

	return &Storages{
		Documents:       documents,
		NotesRepository: NewNotesRepository(documents, utils.NewUUIDGenerator(), clock, logger),
	}, nil
}
