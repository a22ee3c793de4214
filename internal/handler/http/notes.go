// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/models"
)

const msgInvalidJSON = "Exception parsing input"

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.NoteAddRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.add").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON, nil), http.StatusBadRequest)
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())

	note, err := h.services.NotesService.AddNote(r.Context(), actor, request)
	if err != nil {
		h.writeError(w, r, "*Handler.add", err)
		return
	}

	utils.WriteJSON(w,
		models.NewSuccessResponse(fmt.Sprintf("Added Note #%s", note.ID), note),
		http.StatusOK,
	)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActorFromContext(r.Context())

	notes, err := h.services.NotesService.GetNotes(r.Context(), actor)
	if err != nil {
		h.writeError(w, r, "*Handler.get", err)
		return
	}

	utils.WriteJSON(w, models.NewSuccessResponse("", notes), http.StatusOK)
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.NoteEditRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.edit").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON, nil), http.StatusBadRequest)
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())

	note, err := h.services.NotesService.EditNote(r.Context(), actor, request)
	if err != nil {
		h.writeError(w, r, "*Handler.edit", err)
		return
	}

	utils.WriteJSON(w,
		models.NewSuccessResponse(fmt.Sprintf("Updated Note #%s", note.ID), note),
		http.StatusOK,
	)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.NoteRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.remove").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON, nil), http.StatusBadRequest)
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())

	if err := h.services.NotesService.RemoveNote(r.Context(), actor, request); err != nil {
		h.writeError(w, r, "*Handler.remove", err)
		return
	}

	utils.WriteJSON(w, models.NewSuccessResponse("Removed Note", nil), http.StatusOK)
}

func (h *Handler) importNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.NoteImportRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.importNotes").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON, nil), http.StatusBadRequest)
		return
	}

	actor, _ := utils.GetActorFromContext(r.Context())

	notes, err := h.services.NotesService.ImportNotes(r.Context(), actor, request)
	if err != nil {
		h.writeError(w, r, "*Handler.importNotes", err)
		return
	}

	utils.WriteJSON(w,
		models.NewSuccessResponse(fmt.Sprintf("Imported %d Notes", len(notes)), notes),
		http.StatusOK,
	)
}
