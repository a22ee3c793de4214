package service

import "errors"

var (
	// ErrMissingActorContext is returned when a request lacks one of the
	// actor-context prerequisites: an authenticated user, at least one of
	// agent/asset, or a wired document store.
	ErrMissingActorContext = errors.New("agent/asset, user and DB configuration are required")

	// ErrPermissionDenied is returned when the permission evaluator rejects
	// a mutation. No storage mutation is attempted after this.
	ErrPermissionDenied = errors.New("you are not allowed to modify this note")
)
