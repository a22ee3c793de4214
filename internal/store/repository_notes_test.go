// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestRepository(t *testing.T) (NotesRepository, DocumentStore, *utils.FixedClock) {
	t.Helper()
	documents := NewMemoryDocumentStore()
	clock := &utils.FixedClock{Millis: 174540181000}
	repository := NewNotesRepository(documents, utils.NewUUIDGenerator(), clock, logger.Nop())
	return repository, documents, clock
}

func testIdentity() models.Identity {
	return models.Identity{
		PrimaryKey:    "asset-1",
		CandidateKeys: []string{"asset-1", "agent-1"},
	}
}

func testAuthor() models.Resource {
	return models.Resource{PublicID: "user-1", Name: "Alice"}
}

// ---------------------------------------------------------------------------
// EnsureContainer
// ---------------------------------------------------------------------------

func TestRepository_EnsureContainer(t *testing.T) {
	ctx := context.Background()
	repository, documents, _ := newTestRepository(t)
	identity := testIdentity()

	t.Run("creates empty container on first access", func(t *testing.T) {
		require.NoError(t, repository.EnsureContainer(ctx, identity))

		container, err := documents.FindContainer(ctx, "asset-1")
		require.NoError(t, err)
		require.NotNil(t, container)
		assert.Empty(t, container.Notes)
	})

	t.Run("second access does not create a duplicate", func(t *testing.T) {
		require.NoError(t, repository.EnsureContainer(ctx, identity))

		containers, err := documents.FindContainers(ctx, []string{"asset-1"})
		require.NoError(t, err)
		assert.Len(t, containers, 1)
	})
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestRepository_Add(t *testing.T) {
	ctx := context.Background()
	repository, _, _ := newTestRepository(t)
	identity := testIdentity()
	require.NoError(t, repository.EnsureContainer(ctx, identity))

	t.Run("stamps id, author and creation time", func(t *testing.T) {
		subject := "maintenance"
		note, err := repository.Add(ctx, identity, models.NoteAddRequest{
			Text:    "replaced faulty PSU",
			Subject: &subject,
		}, testAuthor())

		require.NoError(t, err)
		assert.NotEmpty(t, note.ID)
		assert.Equal(t, "replaced faulty PSU", note.Text)
		assert.EqualValues(t, 174540181000, note.CreatedOn)
		require.NotNil(t, note.AuthorID)
		assert.Equal(t, "user-1", *note.AuthorID)
		require.NotNil(t, note.AuthorName)
		assert.Equal(t, "Alice", *note.AuthorName)
		require.NotNil(t, note.Subject)
		assert.Equal(t, "maintenance", *note.Subject)

		// editor fields stay absent until first edit
		assert.Nil(t, note.EditorID)
		assert.Nil(t, note.UpdatedOn)
	})

	t.Run("every note gets a distinct id", func(t *testing.T) {
		first, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "one"}, testAuthor())
		require.NoError(t, err)
		second, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "two"}, testAuthor())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("omitted metadata stays absent", func(t *testing.T) {
		note, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "bare"}, testAuthor())
		require.NoError(t, err)

		assert.Nil(t, note.Category)
		assert.Nil(t, note.PerformedOn)
		assert.Nil(t, note.ExternalNote)
	})

	t.Run("missing container yields ErrNoteNotAdded", func(t *testing.T) {
		orphan := models.Identity{PrimaryKey: "never-created", CandidateKeys: []string{"never-created"}}
		_, err := repository.Add(ctx, orphan, models.NoteAddRequest{Text: "text"}, testAuthor())
		require.ErrorIs(t, err, ErrNoteNotAdded)
	})
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repository, documents, clock := newTestRepository(t)
	identity := testIdentity()
	require.NoError(t, repository.EnsureContainer(ctx, identity))

	t.Run("empty container yields empty slice", func(t *testing.T) {
		notes, err := repository.Get(ctx, identity)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("sorted by created_on descending", func(t *testing.T) {
		clock.Set(174540181000)
		older, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "older"}, testAuthor())
		require.NoError(t, err)

		clock.Set(174540182000)
		newer, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "newer"}, testAuthor())
		require.NoError(t, err)

		notes, err := repository.Get(ctx, identity)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, newer.ID, notes[0].ID)
		assert.Equal(t, older.ID, notes[1].ID)
	})

	t.Run("ties keep original relative order", func(t *testing.T) {
		clock.Set(174540183000)
		first, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "tie first"}, testAuthor())
		require.NoError(t, err)
		second, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "tie second"}, testAuthor())
		require.NoError(t, err)

		notes, err := repository.Get(ctx, identity)
		require.NoError(t, err)
		require.Len(t, notes, 4)
		assert.Equal(t, first.ID, notes[0].ID)
		assert.Equal(t, second.ID, notes[1].ID)
	})

	t.Run("aggregates notes from all candidate containers", func(t *testing.T) {
		legacyUser := "legacy-author"
		require.NoError(t, documents.InsertContainer(ctx, models.Container{
			IdentityKey: "agent-1",
			Notes: []models.Note{
				{ID: "legacy-1", Text: "from agent container", CreatedOn: 174540180000, User: &legacyUser},
			},
		}))

		notes, err := repository.Get(ctx, identity)
		require.NoError(t, err)
		require.Len(t, notes, 5)

		// oldest entry comes from the agent container
		last := notes[len(notes)-1]
		assert.Equal(t, "legacy-1", last.ID)
	})

	t.Run("legacy user field is normalized into author_id", func(t *testing.T) {
		notes, err := repository.Get(ctx, identity)
		require.NoError(t, err)

		last := notes[len(notes)-1]
		require.NotNil(t, last.AuthorID)
		assert.Equal(t, "legacy-author", *last.AuthorID)
		require.NotNil(t, last.User)
		assert.Equal(t, "legacy-author", *last.User)
	})
}

// ---------------------------------------------------------------------------
// Edit
// ---------------------------------------------------------------------------

func TestRepository_Edit(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (NotesRepository, *utils.FixedClock, models.Note) {
		t.Helper()
		repository, _, clock := newTestRepository(t)
		require.NoError(t, repository.EnsureContainer(ctx, testIdentity()))

		category := "hardware"
		subject := "disk swap"
		note, err := repository.Add(ctx, testIdentity(), models.NoteAddRequest{
			Text:     "original text",
			Category: &category,
			Subject:  &subject,
		}, testAuthor())
		require.NoError(t, err)
		return repository, clock, note
	}

	t.Run("updates text and stamps editor", func(t *testing.T) {
		repository, clock, note := seed(t)
		clock.Set(174540182000)

		editor := models.Resource{PublicID: "user-2", Name: "Bob"}
		updated, err := repository.Edit(ctx, testIdentity(), models.NoteEditRequest{
			NoteID: note.ID,
			Text:   "corrected text",
		}, editor)

		require.NoError(t, err)
		assert.Equal(t, "corrected text", updated.Text)
		require.NotNil(t, updated.EditorID)
		assert.Equal(t, "user-2", *updated.EditorID)
		require.NotNil(t, updated.EditorName)
		assert.Equal(t, "Bob", *updated.EditorName)
		require.NotNil(t, updated.UpdatedOn)
		assert.EqualValues(t, 174540182000, *updated.UpdatedOn)

		// creation stamp is immutable
		assert.EqualValues(t, 174540181000, updated.CreatedOn)
		require.NotNil(t, updated.AuthorID)
		assert.Equal(t, "user-1", *updated.AuthorID)
	})

	t.Run("omitted fields keep stored values", func(t *testing.T) {
		repository, clock, note := seed(t)
		clock.Set(174540182000)

		updated, err := repository.Edit(ctx, testIdentity(), models.NoteEditRequest{
			NoteID: note.ID,
			Text:   "new text",
		}, testAuthor())

		require.NoError(t, err)
		require.NotNil(t, updated.Category)
		assert.Equal(t, "hardware", *updated.Category)
		require.NotNil(t, updated.Subject)
		assert.Equal(t, "disk swap", *updated.Subject)
	})

	t.Run("supplied fields replace stored values", func(t *testing.T) {
		repository, clock, note := seed(t)
		clock.Set(174540182000)

		category := "software"
		external := true
		updated, err := repository.Edit(ctx, testIdentity(), models.NoteEditRequest{
			NoteID:       note.ID,
			Text:         "new text",
			Category:     &category,
			ExternalNote: &external,
		}, testAuthor())

		require.NoError(t, err)
		assert.Equal(t, "software", *updated.Category)
		require.NotNil(t, updated.ExternalNote)
		assert.True(t, *updated.ExternalNote)
		// untouched optional survives
		assert.Equal(t, "disk swap", *updated.Subject)
	})

	t.Run("unknown note id yields ErrNoteNotModified", func(t *testing.T) {
		repository, _, _ := seed(t)

		_, err := repository.Edit(ctx, testIdentity(), models.NoteEditRequest{
			NoteID: "missing",
			Text:   "whatever",
		}, testAuthor())
		require.ErrorIs(t, err, ErrNoteNotModified)
	})

	t.Run("edit with identical values yields ErrNoteNotModified", func(t *testing.T) {
		repository, clock, note := seed(t)
		clock.Set(174540182000)

		request := models.NoteEditRequest{NoteID: note.ID, Text: "same text"}
		_, err := repository.Edit(ctx, testIdentity(), request, testAuthor())
		require.NoError(t, err)

		// same request, same clock: nothing changes in the stored document
		_, err = repository.Edit(ctx, testIdentity(), request, testAuthor())
		require.ErrorIs(t, err, ErrNoteNotModified)
	})

	t.Run("store is unchanged after a failed edit", func(t *testing.T) {
		repository, _, note := seed(t)

		_, err := repository.Edit(ctx, testIdentity(), models.NoteEditRequest{
			NoteID: "missing",
			Text:   "whatever",
		}, testAuthor())
		require.Error(t, err)

		stored, err := repository.FindOne(ctx, testIdentity(), note.ID)
		require.NoError(t, err)
		assert.Equal(t, "original text", stored.Text)
		assert.Nil(t, stored.EditorID)
	})
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

func TestRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repository, _, _ := newTestRepository(t)
	identity := testIdentity()
	require.NoError(t, repository.EnsureContainer(ctx, identity))

	note, err := repository.Add(ctx, identity, models.NoteAddRequest{Text: "to be removed"}, testAuthor())
	require.NoError(t, err)

	t.Run("unknown note id yields ErrNoteNotRemoved", func(t *testing.T) {
		require.ErrorIs(t, repository.Remove(ctx, identity, "missing"), ErrNoteNotRemoved)

		// the note is still there
		_, err := repository.FindOne(ctx, identity, note.ID)
		require.NoError(t, err)
	})

	t.Run("removes the note", func(t *testing.T) {
		require.NoError(t, repository.Remove(ctx, identity, note.ID))

		_, err := repository.FindOne(ctx, identity, note.ID)
		require.ErrorIs(t, err, ErrNoteNotFound)
	})

	t.Run("second remove of same id fails", func(t *testing.T) {
		require.ErrorIs(t, repository.Remove(ctx, identity, note.ID), ErrNoteNotRemoved)
	})
}

// ---------------------------------------------------------------------------
// SetNotes
// ---------------------------------------------------------------------------

func TestRepository_SetNotes(t *testing.T) {
	ctx := context.Background()
	repository, _, _ := newTestRepository(t)
	identity := testIdentity()
	require.NoError(t, repository.EnsureContainer(ctx, identity))

	t.Run("replaces collection preserving supplied ids and stamps", func(t *testing.T) {
		replacement := []models.Note{
			{ID: "imported-1", Text: "first", CreatedOn: 174540181000},
			{ID: "imported-2", Text: "second", CreatedOn: 174540182000},
		}
		require.NoError(t, repository.SetNotes(ctx, identity, replacement))

		notes, err := repository.Get(ctx, identity)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "imported-2", notes[0].ID)
		assert.EqualValues(t, 174540182000, notes[0].CreatedOn)
	})

	t.Run("replacing a missing container yields ErrNotesNotReplaced", func(t *testing.T) {
		orphan := models.Identity{PrimaryKey: "never-created", CandidateKeys: []string{"never-created"}}
		err := repository.SetNotes(ctx, orphan, []models.Note{{ID: "x"}})
		require.ErrorIs(t, err, ErrNotesNotReplaced)
	})
}

// ---------------------------------------------------------------------------
// ImportNotes
// ---------------------------------------------------------------------------

func TestRepository_ImportNotes(t *testing.T) {
	ctx := context.Background()
	repository, _, clock := newTestRepository(t)
	identity := testIdentity()
	require.NoError(t, repository.EnsureContainer(ctx, identity))

	t.Run("every entry is re-stamped for the acting author", func(t *testing.T) {
		clock.Set(174540182000)
		category := "hardware"

		imported, err := repository.ImportNotes(ctx, identity, []models.NoteAddRequest{
			{Text: "first imported"},
			{Text: "second imported", Category: &category},
		}, testAuthor())

		require.NoError(t, err)
		require.Len(t, imported, 2)
		assert.NotEqual(t, imported[0].ID, imported[1].ID)
		for _, note := range imported {
			assert.EqualValues(t, 174540182000, note.CreatedOn)
			require.NotNil(t, note.AuthorID)
			assert.Equal(t, "user-1", *note.AuthorID)
		}
		require.NotNil(t, imported[1].Category)
		assert.Equal(t, "hardware", *imported[1].Category)
	})

	t.Run("failure reports the failing index", func(t *testing.T) {
		orphan := models.Identity{PrimaryKey: "never-created", CandidateKeys: []string{"never-created"}}

		_, err := repository.ImportNotes(ctx, orphan, []models.NoteAddRequest{{Text: "x"}}, testAuthor())
		require.ErrorIs(t, err, ErrNoteNotAdded)
		assert.Contains(t, err.Error(), "failed to import note at index 0")
	})
}
