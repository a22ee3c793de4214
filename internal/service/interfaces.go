package service

import (
	"context"

	"github.com/MKhiriev/device-notes/models"
)

// NotesService is the orchestration layer between the transport and the
// notes repository: it checks actor-context preconditions, resolves the
// identity key set, consults the permission evaluator for mutations, and
// delegates storage work to the repository.
type NotesService interface {
	AddNote(ctx context.Context, actor models.Actor, request models.NoteAddRequest) (models.Note, error)
	GetNotes(ctx context.Context, actor models.Actor) ([]models.Note, error)
	EditNote(ctx context.Context, actor models.Actor, request models.NoteEditRequest) (models.Note, error)
	RemoveNote(ctx context.Context, actor models.Actor, request models.NoteRemoveRequest) error
	ImportNotes(ctx context.Context, actor models.Actor, request models.NoteImportRequest) ([]models.Note, error)
}

// PermissionEvaluator decides whether an actor may mutate notes.
type PermissionEvaluator interface {

	// CanMutate reports whether actor may mutate the given note. A nil note
	// targets the whole collection (bulk import), so only the elevated
	// capability rule can grant access.
	CanMutate(actor models.Actor, note *models.Note) bool
}

// NotesServiceWrapper defines middleware composition for NotesService.
// Implementations wrap an existing NotesService to add behavior such as
// validating.
type NotesServiceWrapper interface {
	Wrap(NotesService) NotesService // returns a decorated NotesService applying additional behavior
}
