package store

import (
	"context"
	"reflect"
	"sync"

	"github.com/MKhiriev/device-notes/models"
)

// memoryDocumentStore is the in-process implementation of [DocumentStore],
// used by tests and local runs without a MongoDB instance.
//
// It reproduces the store semantics the repository depends on:
//   - modified counts report documents actually changed, so an update that
//     sets a note to values it already holds counts as zero;
//   - duplicate containers for one identity key are allowed, as the
//     check-then-act creation race can produce in the real store;
//   - per-container note mutation applies to the first matching note only,
//     mirroring the positional update operator.
type memoryDocumentStore struct {
	mu         sync.RWMutex
	containers []*models.Container
}

// NewMemoryDocumentStore returns an empty in-process document store.
func NewMemoryDocumentStore() DocumentStore {
	return &memoryDocumentStore{}
}

func (m *memoryDocumentStore) FindContainer(_ context.Context, identityKey string) (*models.Container, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, container := range m.containers {
		if container.IdentityKey == identityKey {
			found := cloneContainer(container)
			return &found, nil
		}
	}

	return nil, nil
}

func (m *memoryDocumentStore) FindContainers(_ context.Context, identityKeys []string) ([]models.Container, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.Container, 0, len(m.containers))
	for _, container := range m.containers {
		if containsKey(identityKeys, container.IdentityKey) {
			matched = append(matched, cloneContainer(container))
		}
	}

	return matched, nil
}

func (m *memoryDocumentStore) InsertContainer(_ context.Context, container models.Container) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	inserted := cloneContainer(&container)
	m.containers = append(m.containers, &inserted)

	return nil
}

func (m *memoryDocumentStore) PushNote(_ context.Context, identityKey string, note models.Note) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, container := range m.containers {
		if container.IdentityKey == identityKey {
			container.Notes = append(container.Notes, cloneNote(note))
			return 1, nil
		}
	}

	return 0, nil
}

func (m *memoryDocumentStore) SetNoteFields(_ context.Context, identityKeys []string, noteID string, update models.NoteUpdate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var modified int64
	for _, container := range m.containers {
		if !containsKey(identityKeys, container.IdentityKey) {
			continue
		}

		// positional update: first matching note per container
		for idx := range container.Notes {
			if container.Notes[idx].ID != noteID {
				continue
			}

			before := cloneNote(container.Notes[idx])
			applyNoteUpdate(&container.Notes[idx], update)

			if !reflect.DeepEqual(before, container.Notes[idx]) {
				modified++
			}
			break
		}
	}

	return modified, nil
}

func (m *memoryDocumentStore) PullNote(_ context.Context, identityKeys []string, noteID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var modified int64
	for _, container := range m.containers {
		if !containsKey(identityKeys, container.IdentityKey) {
			continue
		}

		for idx := range container.Notes {
			if container.Notes[idx].ID == noteID {
				container.Notes = append(container.Notes[:idx], container.Notes[idx+1:]...)
				modified++
				break
			}
		}
	}

	return modified, nil
}

func (m *memoryDocumentStore) FindNote(_ context.Context, identityKeys []string, noteID string) (*models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, container := range m.containers {
		if !containsKey(identityKeys, container.IdentityKey) {
			continue
		}

		for idx := range container.Notes {
			if container.Notes[idx].ID == noteID {
				found := cloneNote(container.Notes[idx])
				return &found, nil
			}
		}
	}

	return nil, nil
}

func (m *memoryDocumentStore) ReplaceNotes(_ context.Context, identityKey string, notes []models.Note) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, container := range m.containers {
		if container.IdentityKey != identityKey {
			continue
		}

		replacement := make([]models.Note, 0, len(notes))
		for _, note := range notes {
			replacement = append(replacement, cloneNote(note))
		}

		if reflect.DeepEqual(container.Notes, replacement) {
			return 0, nil
		}

		container.Notes = replacement
		return 1, nil
	}

	return 0, nil
}

func (m *memoryDocumentStore) Ping(_ context.Context) error {
	return nil
}

func (m *memoryDocumentStore) Close(_ context.Context) error {
	return nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// applyNoteUpdate mirrors the positional $set built from a [models.NoteUpdate]:
// text and editor stamps are always written, optional fields only when the
// update carries them.
func applyNoteUpdate(note *models.Note, update models.NoteUpdate) {
	note.Text = update.Text

	editorID := update.EditorID
	editorName := update.EditorName
	updatedOn := update.UpdatedOn
	note.EditorID = &editorID
	note.EditorName = &editorName
	note.UpdatedOn = &updatedOn

	if update.Subject != nil {
		note.Subject = clonePtr(update.Subject)
	}
	if update.Category != nil {
		note.Category = clonePtr(update.Category)
	}
	if update.NoteCategory != nil {
		note.NoteCategory = clonePtr(update.NoteCategory)
	}
	if update.PerformedOn != nil {
		note.PerformedOn = clonePtr(update.PerformedOn)
	}
	if update.TagNumber != nil {
		note.TagNumber = clonePtr(update.TagNumber)
	}
	if update.StackReplacements != nil {
		note.StackReplacements = clonePtr(update.StackReplacements)
	}
	if update.ExternalNote != nil {
		note.ExternalNote = clonePtr(update.ExternalNote)
	}
	if update.Version != nil {
		note.Version = clonePtr(update.Version)
	}
	if update.SoftwareType != nil {
		note.SoftwareType = clonePtr(update.SoftwareType)
	}
	if update.WorkorderID != nil {
		note.WorkorderID = clonePtr(update.WorkorderID)
	}
}

// cloneNote deep-copies a note so stored state never aliases caller memory.
func cloneNote(note models.Note) models.Note {
	cloned := note
	cloned.AuthorID = clonePtr(note.AuthorID)
	cloned.AuthorName = clonePtr(note.AuthorName)
	cloned.User = clonePtr(note.User)
	cloned.EditorID = clonePtr(note.EditorID)
	cloned.EditorName = clonePtr(note.EditorName)
	cloned.UpdatedOn = clonePtr(note.UpdatedOn)
	cloned.Subject = clonePtr(note.Subject)
	cloned.Category = clonePtr(note.Category)
	cloned.NoteCategory = clonePtr(note.NoteCategory)
	cloned.PerformedOn = clonePtr(note.PerformedOn)
	cloned.TagNumber = clonePtr(note.TagNumber)
	cloned.StackReplacements = clonePtr(note.StackReplacements)
	cloned.ExternalNote = clonePtr(note.ExternalNote)
	cloned.Version = clonePtr(note.Version)
	cloned.SoftwareType = clonePtr(note.SoftwareType)
	cloned.WorkorderID = clonePtr(note.WorkorderID)

	return cloned
}

func cloneContainer(container *models.Container) models.Container {
	cloned := models.Container{
		IdentityKey: container.IdentityKey,
		Notes:       make([]models.Note, 0, len(container.Notes)),
	}
	for _, note := range container.Notes {
		cloned.Notes = append(cloned.Notes, cloneNote(note))
	}

	return cloned
}

func clonePtr[T any](value *T) *T {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
