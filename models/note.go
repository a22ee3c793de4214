// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single timestamped annotation attached to an agent or asset.
//
// The identifier, author stamp, and creation time are assigned once when the
// note is created and never change afterwards. Editor fields are populated
// only after the note has been edited at least once. Every optional metadata
// field is a pointer so that "absent" is distinguishable from "set to the
// zero value" — both in transport and in the stored document.
type Note struct {
	// ID is the globally unique note identifier in its canonical string
	// form. Assigned at creation, immutable.
	ID string `json:"_id" bson:"_id"`

	// Text is the note content. Required.
	Text string `json:"text" bson:"text"`

	// CreatedOn is the creation timestamp in epoch milliseconds. Immutable.
	CreatedOn int64 `json:"created_on" bson:"created_on"`

	// AuthorID and AuthorName identify the user that created the note.
	// Stamped at creation, immutable.
	AuthorID   *string `json:"author_id" bson:"author_id"`
	AuthorName *string `json:"author_name" bson:"author_name"`

	// User is the deprecated predecessor of AuthorID. Older stored notes
	// carry only this field; NormalizeAuthor copies whichever of the two is
	// populated into both at read time. New notes persist AuthorID only.
	User *string `json:"user" bson:"user,omitempty"`

	// EditorID, EditorName and UpdatedOn record the most recent edit.
	// Absent until the note is edited for the first time.
	EditorID   *string `json:"editor_id" bson:"editor_id,omitempty"`
	EditorName *string `json:"editor_name" bson:"editor_name,omitempty"`
	UpdatedOn  *int64  `json:"updated_on" bson:"updated_on,omitempty"`

	Subject           *string `json:"subject" bson:"subject,omitempty"`
	Category          *string `json:"category" bson:"category,omitempty"`
	NoteCategory      *string `json:"note_category" bson:"note_category,omitempty"`
	PerformedOn       *int64  `json:"performed_on" bson:"performed_on,omitempty"`
	TagNumber         *string `json:"tag_number" bson:"tag_number,omitempty"`
	StackReplacements *string `json:"stack_replacements" bson:"stack_replacements,omitempty"`
	ExternalNote      *bool   `json:"external_note" bson:"external_note,omitempty"`
	Version           *string `json:"version" bson:"version,omitempty"`
	SoftwareType      *string `json:"software_type" bson:"software_type,omitempty"`
	WorkorderID       *string `json:"workorder_id" bson:"workorder_id,omitempty"`
}

// NormalizeAuthor reconciles the deprecated User field with AuthorID.
// Whichever of the two is populated is copied into the other, so callers can
// rely on either field regardless of the schema version the note was stored
// under. Notes carrying neither field are left untouched.
func (n *Note) NormalizeAuthor() {
	switch {
	case n.AuthorID == nil && n.User != nil:
		id := *n.User
		n.AuthorID = &id
	case n.User == nil && n.AuthorID != nil:
		id := *n.AuthorID
		n.User = &id
	}
}

// Container is the per-identity document holding the notes of one agent or
// asset. Containers are created lazily on first access to an identity and
// are never deleted by this layer.
type Container struct {
	// IdentityKey is the public id of the agent or asset the container
	// belongs to. Containers are looked up by one or more candidate keys
	// because an asset and its associated agent share notes.
	IdentityKey string `json:"identity_key" bson:"identity_key"`

	// Notes is the ordered note collection. Order within the array is
	// insertion order; retrieval re-sorts by CreatedOn descending.
	Notes []Note `json:"notes" bson:"notes"`
}
