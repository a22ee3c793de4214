// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Administrative capabilities that grant unrestricted mutation rights over
// every note in the agent-or-asset scope.
const (
	PermissionManageAgent  = "MANAGE_AGENT"
	PermissionCompanyAdmin = "COMPANY_ADMIN"
)

// Resource is one entity of the host platform's authenticated request
// context: the acting user, an agent, or an asset.
type Resource struct {
	// PublicID is the platform-wide identifier of the resource.
	PublicID string `json:"public_id"`

	// Name is the display name of the resource.
	Name string `json:"name"`

	// Permissions lists the capability flags the acting user holds on this
	// resource. Nil when the platform did not resolve permissions.
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether the resource carries the named capability.
func (r *Resource) HasPermission(name string) bool {
	if r == nil {
		return false
	}
	for _, p := range r.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// Actor is the authenticated context a request runs under. The host platform
// authenticates the caller and resolves the targeted agent and/or asset; this
// service only consumes the result.
type Actor struct {
	User  *Resource `json:"user,omitempty"`
	Agent *Resource `json:"agent,omitempty"`
	Asset *Resource `json:"asset,omitempty"`
}

// AgentOrAsset returns the primary device-like resource of the context:
// the asset when one is present, otherwise the agent, otherwise nil.
func (a Actor) AgentOrAsset() *Resource {
	if a.Asset != nil {
		return a.Asset
	}
	return a.Agent
}

// Identity is the resolved set of storage keys a request operates on.
// An asset and its associated agent share one logical notes space, so every
// store filter targets "identity key is any of CandidateKeys" rather than a
// single key.
type Identity struct {
	// PrimaryKey is the key new containers and new notes are written under.
	PrimaryKey string

	// CandidateKeys holds the one or two keys considered equivalent at read
	// time. PrimaryKey is always the first element; order is stable.
	CandidateKeys []string
}
