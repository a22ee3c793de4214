package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/models"
)

// notesRepository implements [NotesRepository] on top of a [DocumentStore].
//
// It owns everything above the raw document operations: id generation,
// author/editor stamping, legacy field normalization, retrieval ordering,
// and the translation of an edit request's field-presence set into a
// storage-level partial update.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so all store interactions are traced with structured
// fields (identity_key, note_id, modified counts).
type notesRepository struct {
	documents DocumentStore
	ids       *utils.UUIDGenerator
	clock     utils.Clock

	logger *logger.Logger
}

// NewNotesRepository constructs a [NotesRepository] backed by the provided
// document store. The clock is injected so tests can stamp fixed timestamps.
func NewNotesRepository(documents DocumentStore, ids *utils.UUIDGenerator, clock utils.Clock, logger *logger.Logger) NotesRepository {
	return &notesRepository{
		documents: documents,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// EnsureContainer creates the identity's container on first touch.
//
// The check-then-act sequence is deliberately not transactional: two
// concurrent first accesses may both insert an empty container for the same
// key. That duplication is harmless because every read aggregates all
// containers matching the candidate keys.
func (n *notesRepository) EnsureContainer(ctx context.Context, identity models.Identity) error {
	log := logger.FromContext(ctx)

	container, err := n.documents.FindContainer(ctx, identity.PrimaryKey)
	if err != nil {
		log.Err(err).
			Str("func", "notesRepository.EnsureContainer").
			Str("identity_key", identity.PrimaryKey).
			Msg("failed to look up container")
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	if container != nil {
		return nil
	}

	insertErr := n.documents.InsertContainer(ctx, models.Container{
		IdentityKey: identity.PrimaryKey,
		Notes:       []models.Note{},
	})
	if insertErr != nil {
		log.Err(insertErr).
			Str("func", "notesRepository.EnsureContainer").
			Str("identity_key", identity.PrimaryKey).
			Msg("failed to insert empty container")
		return fmt.Errorf("%w: %w", ErrInsertFailed, insertErr)
	}

	log.Debug().
		Str("func", "notesRepository.EnsureContainer").
		Str("identity_key", identity.PrimaryKey).
		Msg("created empty container on first access")

	return nil
}

// Add appends a freshly stamped note to the primary container.
func (n *notesRepository) Add(ctx context.Context, identity models.Identity, request models.NoteAddRequest, author models.Resource) (models.Note, error) {
	log := logger.FromContext(ctx)

	authorID := author.PublicID
	authorName := author.Name

	note := models.Note{
		ID:         n.ids.Generate(),
		Text:       request.Text,
		CreatedOn:  n.clock.NowUnixMilli(),
		AuthorID:   &authorID,
		AuthorName: &authorName,

		Subject:           request.Subject,
		Category:          request.Category,
		NoteCategory:      request.NoteCategory,
		PerformedOn:       request.PerformedOn,
		TagNumber:         request.TagNumber,
		StackReplacements: request.StackReplacements,
		ExternalNote:      request.ExternalNote,
		Version:           request.Version,
		SoftwareType:      request.SoftwareType,
		WorkorderID:       request.WorkorderID,
	}

	modified, err := n.documents.PushNote(ctx, identity.PrimaryKey, note)
	if err != nil {
		log.Err(err).
			Str("func", "notesRepository.Add").
			Str("identity_key", identity.PrimaryKey).
			Msg("failed to push note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	if modified == 0 {
		log.Warn().
			Str("func", "notesRepository.Add").
			Str("identity_key", identity.PrimaryKey).
			Msg("push matched no container")
		return models.Note{}, ErrNoteNotAdded
	}

	log.Info().
		Str("func", "notesRepository.Add").
		Str("identity_key", identity.PrimaryKey).
		Str("note_id", note.ID).
		Msg("note added")

	return note, nil
}

// Get flattens every container visible to the identity into one collection,
// normalizes legacy author fields, and orders the result by created_on
// descending. The sort is stable: notes sharing a timestamp keep the
// relative order they were read in.
func (n *notesRepository) Get(ctx context.Context, identity models.Identity) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	containers, err := n.documents.FindContainers(ctx, identity.CandidateKeys)
	if err != nil {
		log.Err(err).
			Str("func", "notesRepository.Get").
			Strs("identity_keys", identity.CandidateKeys).
			Msg("failed to query containers")
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	notes := make([]models.Note, 0, 16)
	for _, container := range containers {
		for _, note := range container.Notes {
			note.NormalizeAuthor()
			notes = append(notes, note)
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedOn > notes[j].CreatedOn
	})

	return notes, nil
}

// Edit applies the request's supplied fields to the targeted note. The
// update carries exactly: the text, the editor stamp, the current time as
// updated_on, and only those optional fields present in the request —
// omitted fields never reach the store and keep their prior values.
func (n *notesRepository) Edit(ctx context.Context, identity models.Identity, request models.NoteEditRequest, editor models.Resource) (models.Note, error) {
	log := logger.FromContext(ctx)

	update := models.NoteUpdate{
		Text:       request.Text,
		EditorID:   editor.PublicID,
		EditorName: editor.Name,
		UpdatedOn:  n.clock.NowUnixMilli(),

		Subject:           request.Subject,
		Category:          request.Category,
		NoteCategory:      request.NoteCategory,
		PerformedOn:       request.PerformedOn,
		TagNumber:         request.TagNumber,
		StackReplacements: request.StackReplacements,
		ExternalNote:      request.ExternalNote,
		Version:           request.Version,
		SoftwareType:      request.SoftwareType,
		WorkorderID:       request.WorkorderID,
	}

	modified, err := n.documents.SetNoteFields(ctx, identity.CandidateKeys, request.NoteID, update)
	if err != nil {
		log.Err(err).
			Str("func", "notesRepository.Edit").
			Str("note_id", request.NoteID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	note, findErr := n.FindOne(ctx, identity, request.NoteID)
	if modified == 0 || errors.Is(findErr, ErrNoteNotFound) {
		log.Warn().
			Str("func", "notesRepository.Edit").
			Str("note_id", request.NoteID).
			Int64("modified", modified).
			Msg("note not modified")
		return models.Note{}, ErrNoteNotModified
	}
	if findErr != nil {
		return models.Note{}, findErr
	}

	log.Info().
		Str("func", "notesRepository.Edit").
		Str("note_id", request.NoteID).
		Msg("note updated")

	return note, nil
}

// Remove deletes the note with the given id from any container matching the
// candidate keys.
func (n *notesRepository) Remove(ctx context.Context, identity models.Identity, noteID string) error {
	log := logger.FromContext(ctx)

	modified, err := n.documents.PullNote(ctx, identity.CandidateKeys, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "notesRepository.Remove").
			Str("note_id", noteID).
			Msg("failed to pull note")
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	if modified == 0 {
		log.Warn().
			Str("func", "notesRepository.Remove").
			Str("note_id", noteID).
			Msg("pull matched no note")
		return ErrNoteNotRemoved
	}

	log.Info().
		Str("func", "notesRepository.Remove").
		Str("note_id", noteID).
		Msg("note removed")

	return nil
}

// FindOne returns the note with the given id across any candidate identity
// key, with legacy author fields normalized.
func (n *notesRepository) FindOne(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.documents.FindNote(ctx, identity.CandidateKeys, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "notesRepository.FindOne").
			Str("note_id", noteID).
			Msg("failed to query note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	if note == nil {
		return models.Note{}, ErrNoteNotFound
	}

	note.NormalizeAuthor()

	return *note, nil
}

// SetNotes wholesale-replaces the primary container's note collection.
// Supplied notes are stored as given; callers that need original ids and
// timestamps preserved must supply them.
func (n *notesRepository) SetNotes(ctx context.Context, identity models.Identity, notes []models.Note) error {
	log := logger.FromContext(ctx)

	modified, err := n.documents.ReplaceNotes(ctx, identity.PrimaryKey, notes)
	if err != nil {
		log.Err(err).
			Str("func", "notesRepository.SetNotes").
			Str("identity_key", identity.PrimaryKey).
			Msg("failed to replace notes")
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	if modified == 0 {
		log.Warn().
			Str("func", "notesRepository.SetNotes").
			Str("identity_key", identity.PrimaryKey).
			Msg("replace matched no container")
		return ErrNotesNotReplaced
	}

	log.Info().
		Str("func", "notesRepository.SetNotes").
		Str("identity_key", identity.PrimaryKey).
		Int("notes_count", len(notes)).
		Msg("notes collection replaced")

	return nil
}

// ImportNotes re-adds each given note through [notesRepository.Add]. Every
// imported note receives a fresh id and timestamp and is authored by the
// acting user; original authorship is not preserved.
func (n *notesRepository) ImportNotes(ctx context.Context, identity models.Identity, requests []models.NoteAddRequest, author models.Resource) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	imported := make([]models.Note, 0, len(requests))
	for idx, request := range requests {
		note, err := n.Add(ctx, identity, request, author)
		if err != nil {
			log.Err(err).
				Str("func", "notesRepository.ImportNotes").
				Int("iteration", idx+1).
				Int("total", len(requests)).
				Msg("failed to import note")
			return nil, fmt.Errorf("failed to import note at index %d: %w", idx, err)
		}

		imported = append(imported, note)
	}

	log.Info().
		Str("func", "notesRepository.ImportNotes").
		Str("identity_key", identity.PrimaryKey).
		Int("notes_count", len(imported)).
		Msg("notes imported")

	return imported, nil
}
