// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/store"
	"github.com/MKhiriev/device-notes/models"
)

type notesService struct {
	repository  store.NotesRepository
	permissions PermissionEvaluator

	logger *logger.Logger
}

// NewNotesService constructs the [NotesService] orchestration layer over the
// given repository and permission evaluator.
func NewNotesService(repository store.NotesRepository, permissions PermissionEvaluator, logger *logger.Logger) NotesService {
	return &notesService{
		repository:  repository,
		permissions: permissions,
		logger:      logger,
	}
}

func (s *notesService) AddNote(ctx context.Context, actor models.Actor, request models.NoteAddRequest) (models.Note, error) {
	identity, err := s.resolve(actor)
	if err != nil {
		return models.Note{}, err
	}

	if err := s.repository.EnsureContainer(ctx, identity); err != nil {
		return models.Note{}, err
	}

	return s.repository.Add(ctx, identity, request, *actor.User)
}

func (s *notesService) GetNotes(ctx context.Context, actor models.Actor) ([]models.Note, error) {
	identity, err := s.resolve(actor)
	if err != nil {
		return nil, err
	}

	if err := s.repository.EnsureContainer(ctx, identity); err != nil {
		return nil, err
	}

	return s.repository.Get(ctx, identity)
}

func (s *notesService) EditNote(ctx context.Context, actor models.Actor, request models.NoteEditRequest) (models.Note, error) {
	identity, err := s.resolve(actor)
	if err != nil {
		return models.Note{}, err
	}

	if err := s.repository.EnsureContainer(ctx, identity); err != nil {
		return models.Note{}, err
	}

	if err := s.authorizeMutation(ctx, actor, identity, request.NoteID); err != nil {
		return models.Note{}, err
	}

	return s.repository.Edit(ctx, identity, request, *actor.User)
}

func (s *notesService) RemoveNote(ctx context.Context, actor models.Actor, request models.NoteRemoveRequest) error {
	identity, err := s.resolve(actor)
	if err != nil {
		return err
	}

	if err := s.repository.EnsureContainer(ctx, identity); err != nil {
		return err
	}

	if err := s.authorizeMutation(ctx, actor, identity, request.NoteID); err != nil {
		return err
	}

	return s.repository.Remove(ctx, identity, request.NoteID)
}

func (s *notesService) ImportNotes(ctx context.Context, actor models.Actor, request models.NoteImportRequest) ([]models.Note, error) {
	identity, err := s.resolve(actor)
	if err != nil {
		return nil, err
	}

	if err := s.repository.EnsureContainer(ctx, identity); err != nil {
		return nil, err
	}

	// no target note: only the elevated capability rule can grant import
	if !s.permissions.CanMutate(actor, nil) {
		logger.FromContext(ctx).Warn().
			Str("func", "notesService.ImportNotes").
			Str("identity_key", identity.PrimaryKey).
			Msg("import denied")
		return nil, ErrPermissionDenied
	}

	return s.repository.ImportNotes(ctx, identity, request.Notes, *actor.User)
}

// resolve checks the actor-context preconditions and computes the identity
// key set. The repository handle is part of the precondition: without a
// wired store no request may proceed.
func (s *notesService) resolve(actor models.Actor) (models.Identity, error) {
	if s.repository == nil {
		return models.Identity{}, ErrMissingActorContext
	}

	return ResolveIdentity(actor)
}

// authorizeMutation fetches the targeted note (when it exists) and asks the
// permission evaluator whether the actor may mutate it. A missing note is
// passed to the evaluator as nil, so only elevated actors proceed to the
// repository — which then reports the domain "not modified"/"not removed"
// error instead of leaking a permission denial.
func (s *notesService) authorizeMutation(ctx context.Context, actor models.Actor, identity models.Identity, noteID string) error {
	log := logger.FromContext(ctx)

	var target *models.Note

	note, err := s.repository.FindOne(ctx, identity, noteID)
	switch {
	case err == nil:
		target = &note
	case errors.Is(err, store.ErrNoteNotFound):
		target = nil
	default:
		return err
	}

	if !s.permissions.CanMutate(actor, target) {
		log.Warn().
			Str("func", "notesService.authorizeMutation").
			Str("note_id", noteID).
			Msg("mutation denied")
		return ErrPermissionDenied
	}

	return nil
}
