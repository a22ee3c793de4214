// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/service"
	"github.com/MKhiriev/device-notes/internal/store"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/internal/validators"
	"github.com/MKhiriev/device-notes/models"
)

// envelopeError pairs the HTTP status with the fixed, user-facing message of
// a sentinel error. Messages here are part of the response contract and are
// kept distinct from the lower-case internal error strings.
type envelopeError struct {
	status  int
	message string
}

var errorEnvelopeMap = map[error]envelopeError{
	service.ErrMissingActorContext: {http.StatusBadRequest, "Agent/Asset, user and DB configuration are required"},
	service.ErrPermissionDenied:    {http.StatusForbidden, "You are not allowed to modify this note"},

	store.ErrNoteNotAdded:     {http.StatusConflict, "Note not added"},
	store.ErrNoteNotModified:  {http.StatusNotFound, "Note not modified"},
	store.ErrNoteNotRemoved:   {http.StatusNotFound, "Note not removed"},
	store.ErrNoteNotFound:     {http.StatusNotFound, "Note not found"},
	store.ErrNotesNotReplaced: {http.StatusConflict, "Notes not replaced"},
	store.ErrQueryFailed:      {http.StatusInternalServerError, "An unexpected error occurred"},
	store.ErrInsertFailed:     {http.StatusInternalServerError, "An unexpected error occurred"},
	store.ErrUpdateFailed:     {http.StatusInternalServerError, "An unexpected error occurred"},
	store.ErrDecodingDocument: {http.StatusInternalServerError, "An unexpected error occurred"},
}

// writeError resolves err into the uniform error envelope.
//
// Validation failures carry their per-field detail in the envelope data;
// every mapped sentinel gets its fixed message; anything unmapped is
// reported with the generic message and 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		log.Warn().Str("func", funcName).Err(err).Msg("request validation failed")
		utils.WriteJSON(w,
			models.NewErrorResponse(msgInvalidJSON, []models.FieldError(fieldErrs)),
			http.StatusBadRequest,
		)
		return
	}

	for target, envelope := range errorEnvelopeMap {
		if errors.Is(err, target) {
			log.Warn().Str("func", funcName).Err(err).Msg("request resolved to error envelope")
			utils.WriteJSON(w, models.NewErrorResponse(envelope.message, nil), envelope.status)
			return
		}
	}

	log.Err(err).Str("func", funcName).Msg("unmapped error")
	utils.WriteJSON(w,
		models.NewErrorResponse("An unexpected error occurred", nil),
		http.StatusInternalServerError,
	)
}
