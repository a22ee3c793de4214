package models

// NoteAddRequest describes a new note. Text is the only required field;
// every metadata field is optional and stored only when supplied.
type NoteAddRequest struct {
	Text string `json:"text"`

	Subject           *string `json:"subject,omitempty"`
	Category          *string `json:"category,omitempty"`
	NoteCategory      *string `json:"note_category,omitempty"`
	PerformedOn       *int64  `json:"performed_on,omitempty"`
	TagNumber         *string `json:"tag_number,omitempty"`
	StackReplacements *string `json:"stack_replacements,omitempty"`
	ExternalNote      *bool   `json:"external_note,omitempty"`
	Version           *string `json:"version,omitempty"`
	SoftwareType      *string `json:"software_type,omitempty"`
	WorkorderID       *string `json:"workorder_id,omitempty"`
}

// NoteEditRequest describes a partial update of an existing note.
//
// A nil optional field means "not supplied" and must leave the stored value
// untouched; a non-nil field replaces the stored value. Presence is carried
// by pointer nil-ness — never inferred from a field holding its zero value.
type NoteEditRequest struct {
	// NoteID is the identifier of the note to update. Required.
	NoteID string `json:"note_id"`

	// Text is the replacement note content. Required.
	Text string `json:"text"`

	Subject           *string `json:"subject,omitempty"`
	Category          *string `json:"category,omitempty"`
	NoteCategory      *string `json:"note_category,omitempty"`
	PerformedOn       *int64  `json:"performed_on,omitempty"`
	TagNumber         *string `json:"tag_number,omitempty"`
	StackReplacements *string `json:"stack_replacements,omitempty"`
	ExternalNote      *bool   `json:"external_note,omitempty"`
	Version           *string `json:"version,omitempty"`
	SoftwareType      *string `json:"software_type,omitempty"`
	WorkorderID       *string `json:"workorder_id,omitempty"`
}

// NoteRemoveRequest identifies the note to delete.
type NoteRemoveRequest struct {
	NoteID string `json:"note_id"`
}

// NoteImportRequest carries a batch of notes for bulk import. Each entry is
// re-added as a fresh note: new id, new creation timestamp, and the acting
// user as author.
type NoteImportRequest struct {
	Notes []NoteAddRequest `json:"notes"`
}

// NoteUpdate is the storage-level update built from a NoteEditRequest.
// Text and the editor stamp are always written; each optional field is
// written only when non-nil. The repository constructs this from the edit
// request's presence set, the storage backends translate it into a single
// atomic update of the matched note.
type NoteUpdate struct {
	Text       string
	EditorID   string
	EditorName string
	UpdatedOn  int64

	Subject           *string
	Category          *string
	NoteCategory      *string
	PerformedOn       *int64
	TagNumber         *string
	StackReplacements *string
	ExternalNote      *bool
	Version           *string
	SoftwareType      *string
	WorkorderID       *string
}
