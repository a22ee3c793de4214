// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/device-notes/models"
)

// DocumentStore is the atomic single-document surface of the notes
// collection: one container document per identity key, each holding an
// ordered notes array. Every mutation is a single conditional document
// update and reports the number of documents it modified, mirroring the
// modified-count contract of the underlying store.
//
// There are no cross-document transactions. Reads that aggregate several
// containers are not consistent snapshots; callers must stay correct when
// concurrent writes interleave, including when a check-then-act container
// creation race has produced duplicate empty containers for one key.
type DocumentStore interface {
	// FindContainer looks up the container stored under exactly identityKey.
	// Returns (nil, nil) when no container matches.
	FindContainer(ctx context.Context, identityKey string) (*models.Container, error)

	// FindContainers returns every container whose identity key is any of
	// identityKeys, in store order. An empty result is not an error.
	FindContainers(ctx context.Context, identityKeys []string) ([]models.Container, error)

	// InsertContainer stores a new container document.
	InsertContainer(ctx context.Context, container models.Container) error

	// PushNote atomically appends note to the notes array of the container
	// stored under identityKey and returns the modified-document count.
	PushNote(ctx context.Context, identityKey string, note models.Note) (int64, error)

	// SetNoteFields atomically applies update to the note with the given id
	// inside any container matching identityKeys. Only the fields the update
	// carries are written. Returns the modified-document count; a note whose
	// stored values already equal the update counts as unmodified.
	SetNoteFields(ctx context.Context, identityKeys []string, noteID string, update models.NoteUpdate) (int64, error)

	// PullNote atomically deletes the note with the given id from any
	// container matching identityKeys and returns the modified-document count.
	PullNote(ctx context.Context, identityKeys []string, noteID string) (int64, error)

	// FindNote returns the note with the given id from any container
	// matching identityKeys, or (nil, nil) when absent.
	FindNote(ctx context.Context, identityKeys []string, noteID string) (*models.Note, error)

	// ReplaceNotes atomically replaces the whole notes array of the
	// container stored under identityKey and returns the modified-document
	// count.
	ReplaceNotes(ctx context.Context, identityKey string, notes []models.Note) (int64, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close(ctx context.Context) error
}

// NotesRepository owns container lifecycle and note CRUD on top of a
// DocumentStore. All read paths normalize the deprecated `user` field into
// `author_id` (and back) before returning notes.
type NotesRepository interface {
	// EnsureContainer creates an empty container for the identity's primary
	// key when none exists yet. Concurrent first accesses may both insert;
	// the resulting duplicate empty containers are tolerated because reads
	// aggregate every matching container.
	EnsureContainer(ctx context.Context, identity models.Identity) error

	// Add constructs a new note from request, stamped with the acting
	// author and the current time, and appends it to the primary container.
	// Returns [ErrNoteNotAdded] when the store reports zero modifications.
	Add(ctx context.Context, identity models.Identity, request models.NoteAddRequest, author models.Resource) (models.Note, error)

	// Get returns every note visible to the identity, sorted by created_on
	// descending with ties keeping their original relative order. An empty
	// store yields an empty slice, never an error.
	Get(ctx context.Context, identity models.Identity) ([]models.Note, error)

	// Edit applies the request's supplied fields plus editor stamps to the
	// targeted note. Returns [ErrNoteNotModified] when the store reports
	// zero modifications or the note cannot be located afterwards.
	Edit(ctx context.Context, identity models.Identity, request models.NoteEditRequest, editor models.Resource) (models.Note, error)

	// Remove deletes the note with the given id. Returns [ErrNoteNotRemoved]
	// when the store reports zero modifications.
	Remove(ctx context.Context, identity models.Identity, noteID string) error

	// FindOne returns the note with the given id, or [ErrNoteNotFound].
	FindOne(ctx context.Context, identity models.Identity, noteID string) (models.Note, error)

	// SetNotes wholesale-replaces the primary container's note collection.
	// Ids and timestamps of the given notes are stored as supplied.
	SetNotes(ctx context.Context, identity models.Identity, notes []models.Note) error

	// ImportNotes re-adds each given note through Add, so every imported
	// note receives a fresh id, the current time, and the acting author.
	ImportNotes(ctx context.Context, identity models.Identity, requests []models.NoteAddRequest, author models.Resource) ([]models.Note, error)
}
