// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"

	"github.com/MKhiriev/device-notes/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldText targets the required note content.
	FieldText = "text"

	// FieldNoteID targets the identifier of the note to edit or remove.
	FieldNoteID = "note_id"

	// FieldNotes targets the batch of notes in an import request.
	FieldNotes = "notes"
)

// NotesValidator implements the Validator interface for all note request
// models: NoteAddRequest, NoteEditRequest, NoteRemoveRequest and
// NoteImportRequest. Both value and pointer forms are accepted.
type NotesValidator struct {
}

// NewNotesValidator constructs a new NotesValidator and returns it as the
// Validator interface.
func NewNotesValidator() Validator {
	return &NotesValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of input. Both value and pointer forms of each
// supported request are accepted.
//
// Returns ErrUnsupportedType if input does not match any known request,
// ErrUnknownField if a scoped field name is not recognized, or a
// [FieldErrors] value listing every failing field.
func (v *NotesValidator) Validate(_ context.Context, input any, fields ...string) error {
	switch request := input.(type) {
	case models.NoteAddRequest:
		return v.validateAdd(request, fields...)
	case *models.NoteAddRequest:
		return v.validateAdd(*request, fields...)

	case models.NoteEditRequest:
		return v.validateEdit(request, fields...)
	case *models.NoteEditRequest:
		return v.validateEdit(*request, fields...)

	case models.NoteRemoveRequest:
		return v.validateRemove(request, fields...)
	case *models.NoteRemoveRequest:
		return v.validateRemove(*request, fields...)

	case models.NoteImportRequest:
		return v.validateImport(request, fields...)
	case *models.NoteImportRequest:
		return v.validateImport(*request, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateAdd validates a NoteAddRequest.
//
// Default validated fields (when none specified): Text.
func (v *NotesValidator) validateAdd(request models.NoteAddRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldText:
			if request.Text == "" {
				errs = append(errs, models.FieldError{Field: FieldText, Message: ErrEmptyText.Error()})
			}
		default:
			return ErrUnknownField
		}
	}

	return errsOrNil(errs)
}

// validateEdit validates a NoteEditRequest.
//
// Default validated fields (when none specified): NoteID, Text.
func (v *NotesValidator) validateEdit(request models.NoteEditRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldText}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if request.NoteID == "" {
				errs = append(errs, models.FieldError{Field: FieldNoteID, Message: ErrEmptyNoteID.Error()})
			}
		case FieldText:
			if request.Text == "" {
				errs = append(errs, models.FieldError{Field: FieldText, Message: ErrEmptyText.Error()})
			}
		default:
			return ErrUnknownField
		}
	}

	return errsOrNil(errs)
}

// validateRemove validates a NoteRemoveRequest.
//
// Default validated fields (when none specified): NoteID.
func (v *NotesValidator) validateRemove(request models.NoteRemoveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if request.NoteID == "" {
				errs = append(errs, models.FieldError{Field: FieldNoteID, Message: ErrEmptyNoteID.Error()})
			}
		default:
			return ErrUnknownField
		}
	}

	return errsOrNil(errs)
}

// validateImport validates a NoteImportRequest. The batch must be non-empty
// and every entry must carry text; failing entries are reported individually
// as "notes.<index>.text".
func (v *NotesValidator) validateImport(request models.NoteImportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotes}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldNotes:
			if len(request.Notes) == 0 {
				errs = append(errs, models.FieldError{Field: FieldNotes, Message: ErrNoNotesGiven.Error()})
			}

			for idx, note := range request.Notes {
				if note.Text == "" {
					errs = append(errs, models.FieldError{
						Field:   FieldNotes + "." + strconv.Itoa(idx) + "." + FieldText,
						Message: ErrEmptyText.Error(),
					})
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return errsOrNil(errs)
}

func errsOrNil(errs FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
