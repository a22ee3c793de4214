package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/device-notes/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText    = errors.New("text is required")
	ErrEmptyNoteID  = errors.New("note id is required")
	ErrNoNotesGiven = errors.New("notes list cannot be empty")
)

// FieldErrors aggregates per-field validation failures. It implements the
// error interface so it can travel through the service layers like any other
// error; the handler extracts it with [errors.As] to fill the envelope's
// structured data.
type FieldErrors []models.FieldError

func (e FieldErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fieldErr := range e {
		messages = append(messages, fieldErr.Field+": "+fieldErr.Message)
	}

	return strings.Join(messages, "; ")
}
