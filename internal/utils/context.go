// Package utils provides small helpers shared across the application:
// type-safe context keys, JSON response writing, identifier generation,
// and the clock abstraction used for timestamp stamping.
package utils

import (
	"context"

	"github.com/MKhiriev/device-notes/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key under which the authenticated actor context is
// stored in the request context. Written by the actor middleware, read via
// GetActorFromContext.
var ActorCtxKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated actor from the context.
//
// The ok flag is false when no actor has been attached or the stored value
// has an unexpected type.
func GetActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(models.Actor)
	return actor, ok
}
