package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotAdded is returned when appending a new note completes
	// without a store error but the modified-document count is zero,
	// meaning no container accepted the note.
	ErrNoteNotAdded = errors.New("note not added")

	// ErrNoteNotModified is returned when an edit matches no stored note,
	// or when the targeted note cannot be located after the update. A note
	// whose stored values already equal the update also reports this, since
	// the store cannot distinguish "absent" from "unchanged".
	ErrNoteNotModified = errors.New("note not modified")

	// ErrNoteNotRemoved is returned when a delete matches no stored note.
	ErrNoteNotRemoved = errors.New("note not removed")

	// ErrNoteNotFound is returned when a lookup by note id produces no
	// result in any container the identity can see.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNotesNotReplaced is returned when a wholesale replacement of a
	// container's note collection modifies no document.
	ErrNotesNotReplaced = errors.New("notes not replaced")
)

// Low-level document store errors. These are returned (or wrapped) when a
// store-level operation fails before any domain logic can be applied.
var (
	// ErrQueryFailed is returned when a find against the collection fails.
	ErrQueryFailed = errors.New("error querying document store")

	// ErrInsertFailed is returned when inserting a container document fails.
	ErrInsertFailed = errors.New("error inserting container document")

	// ErrUpdateFailed is returned when an atomic update against a container
	// document fails at the store level.
	ErrUpdateFailed = errors.New("error updating container document")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into its domain model, typically a historical shape the
	// current schema cannot read.
	ErrDecodingDocument = errors.New("error decoding container document")
)
