package service

import (
	"context"

	"github.com/MKhiriev/device-notes/internal/validators"
	"github.com/MKhiriev/device-notes/models"
)

// NotesValidationService decorates a [NotesService] with request validation.
// Invalid requests never reach the inner service; the returned error carries
// per-field detail as a [validators.FieldErrors] value.
type NotesValidationService struct {
	inner     NotesService
	validator validators.Validator
}

func NewNotesValidationService() NotesServiceWrapper {
	return &NotesValidationService{
		validator: validators.NewNotesValidator(),
	}
}

func (v *NotesValidationService) AddNote(ctx context.Context, actor models.Actor, request models.NoteAddRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, err
	}

	return v.inner.AddNote(ctx, actor, request)
}

func (v *NotesValidationService) GetNotes(ctx context.Context, actor models.Actor) ([]models.Note, error) {
	return v.inner.GetNotes(ctx, actor)
}

func (v *NotesValidationService) EditNote(ctx context.Context, actor models.Actor, request models.NoteEditRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, err
	}

	return v.inner.EditNote(ctx, actor, request)
}

func (v *NotesValidationService) RemoveNote(ctx context.Context, actor models.Actor, request models.NoteRemoveRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return err
	}

	return v.inner.RemoveNote(ctx, actor, request)
}

func (v *NotesValidationService) ImportNotes(ctx context.Context, actor models.Actor, request models.NoteImportRequest) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, err
	}

	return v.inner.ImportNotes(ctx, actor, request)
}

func (v *NotesValidationService) Wrap(inner NotesService) NotesService {
	v.inner = inner
	return v
}
