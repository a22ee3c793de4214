package service

import (
	"testing"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notePtr(note models.Note) *models.Note { return &note }

func TestCanMutate_Enforced(t *testing.T) {
	evaluator := NewPermissionEvaluator(true, logger.Nop())

	authorID := "user-1"
	legacyID := "user-1"
	otherID := "user-9"

	tests := []struct {
		name    string
		actor   models.Actor
		note    *models.Note
		allowed bool
	}{
		{
			name:    "author matches author_id",
			actor:   actorWith(),
			note:    notePtr(models.Note{AuthorID: &authorID}),
			allowed: true,
		},
		{
			name:    "author matches legacy user field",
			actor:   actorWith(),
			note:    notePtr(models.Note{User: &legacyID}),
			allowed: true,
		},
		{
			name:    "non-author without capability",
			actor:   actorWith(),
			note:    notePtr(models.Note{AuthorID: &otherID}),
			allowed: false,
		},
		{
			name:    "note without any author stamp",
			actor:   actorWith(),
			note:    notePtr(models.Note{}),
			allowed: false,
		},
		{
			name:    "MANAGE_AGENT on asset overrides authorship",
			actor:   actorWith(models.PermissionManageAgent),
			note:    notePtr(models.Note{AuthorID: &otherID}),
			allowed: true,
		},
		{
			name:    "COMPANY_ADMIN on asset overrides authorship",
			actor:   actorWith(models.PermissionCompanyAdmin),
			note:    notePtr(models.Note{AuthorID: &otherID}),
			allowed: true,
		},
		{
			name:    "unrelated capability grants nothing",
			actor:   actorWith("VIEW_REPORTS"),
			note:    notePtr(models.Note{AuthorID: &otherID}),
			allowed: false,
		},
		{
			name:    "nil note requires a capability",
			actor:   actorWith(),
			note:    nil,
			allowed: false,
		},
		{
			name:    "nil note with capability",
			actor:   actorWith(models.PermissionManageAgent),
			note:    nil,
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, evaluator.CanMutate(tt.actor, tt.note))
		})
	}
}

// TestCanMutate_CapabilityOnPrimaryResource verifies that the capability
// check targets the asset when one is present, the agent otherwise.
func TestCanMutate_CapabilityOnPrimaryResource(t *testing.T) {
	evaluator := NewPermissionEvaluator(true, logger.Nop())
	otherID := "user-9"

	t.Run("capability on agent only, asset present", func(t *testing.T) {
		actor := models.Actor{
			User:  &models.Resource{PublicID: "user-1"},
			Asset: &models.Resource{PublicID: "asset-1"},
			Agent: &models.Resource{PublicID: "agent-1", Permissions: []string{models.PermissionManageAgent}},
		}
		// the asset is the primary resource and carries no capability
		assert.False(t, evaluator.CanMutate(actor, notePtr(models.Note{AuthorID: &otherID})))
	})

	t.Run("agent-only context uses the agent's capabilities", func(t *testing.T) {
		actor := models.Actor{
			User:  &models.Resource{PublicID: "user-1"},
			Agent: &models.Resource{PublicID: "agent-1", Permissions: []string{models.PermissionManageAgent}},
		}
		assert.True(t, evaluator.CanMutate(actor, notePtr(models.Note{AuthorID: &otherID})))
	})
}

func TestCanMutate_Disabled(t *testing.T) {
	evaluator := NewPermissionEvaluator(false, logger.Nop())
	otherID := "user-9"

	t.Run("any authenticated actor passes", func(t *testing.T) {
		assert.True(t, evaluator.CanMutate(actorWith(), notePtr(models.Note{AuthorID: &otherID})))
		assert.True(t, evaluator.CanMutate(actorWith(), nil))
	})

	t.Run("missing user still fails", func(t *testing.T) {
		actor := actorWith()
		actor.User = nil
		assert.False(t, evaluator.CanMutate(actor, nil))
	})
}

func TestResolveIdentity(t *testing.T) {
	t.Run("asset is the primary key, agent the second candidate", func(t *testing.T) {
		identity, err := ResolveIdentity(actorWith())
		require.NoError(t, err)
		assert.Equal(t, "asset-1", identity.PrimaryKey)
		assert.Equal(t, []string{"asset-1", "agent-1"}, identity.CandidateKeys)
	})

	t.Run("agent-only context yields a single key", func(t *testing.T) {
		actor := models.Actor{
			User:  &models.Resource{PublicID: "user-1"},
			Agent: &models.Resource{PublicID: "agent-1"},
		}

		identity, err := ResolveIdentity(actor)
		require.NoError(t, err)
		assert.Equal(t, "agent-1", identity.PrimaryKey)
		assert.Equal(t, []string{"agent-1"}, identity.CandidateKeys)
	})

	t.Run("asset and agent sharing one id are not duplicated", func(t *testing.T) {
		actor := models.Actor{
			User:  &models.Resource{PublicID: "user-1"},
			Asset: &models.Resource{PublicID: "shared-1"},
			Agent: &models.Resource{PublicID: "shared-1"},
		}

		identity, err := ResolveIdentity(actor)
		require.NoError(t, err)
		assert.Equal(t, []string{"shared-1"}, identity.CandidateKeys)
	})

	t.Run("missing user", func(t *testing.T) {
		actor := actorWith()
		actor.User = nil
		_, err := ResolveIdentity(actor)
		require.ErrorIs(t, err, ErrMissingActorContext)
	})

	t.Run("missing agent and asset", func(t *testing.T) {
		actor := models.Actor{User: &models.Resource{PublicID: "user-1"}}
		_, err := ResolveIdentity(actor)
		require.ErrorIs(t, err, ErrMissingActorContext)
	})
}
