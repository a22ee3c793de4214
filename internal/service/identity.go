package service

import "github.com/MKhiriev/device-notes/models"

// ResolveIdentity computes the storage key set for the actor's agent/asset
// context. The agent-or-asset public id is the primary key; the associated
// agent's id is added as a second candidate when it differs, because an
// asset and its agent share one logical notes space.
//
// Returns [ErrMissingActorContext] when the actor lacks an authenticated
// user or carries neither an agent nor an asset.
func ResolveIdentity(actor models.Actor) (models.Identity, error) {
	primary := actor.AgentOrAsset()
	if actor.User == nil || primary == nil {
		return models.Identity{}, ErrMissingActorContext
	}

	keys := []string{primary.PublicID}
	if actor.Agent != nil && actor.Agent.PublicID != primary.PublicID {
		keys = append(keys, actor.Agent.PublicID)
	}

	return models.Identity{
		PrimaryKey:    primary.PublicID,
		CandidateKeys: keys,
	}, nil
}
