// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/models"
)

// permissionEvaluator implements [PermissionEvaluator] with the two-rule
// cascade, behind an enforcement toggle:
//  1. an actor whose agent-or-asset resource carries MANAGE_AGENT or
//     COMPANY_ADMIN may mutate any note;
//  2. otherwise, a specific note may be mutated only by its author, checked
//     against both author_id and the deprecated user field.
//
// When enforcement is disabled every authenticated actor passes. Disabling
// is a deliberate configuration act and is logged at construction.
type permissionEvaluator struct {
	enforce bool

	logger *logger.Logger
}

// NewPermissionEvaluator constructs a [PermissionEvaluator] with the given
// enforcement setting.
func NewPermissionEvaluator(enforce bool, logger *logger.Logger) PermissionEvaluator {
	if !enforce {
		logger.Warn().Msg("note permission enforcement is disabled: any authenticated actor may mutate any note")
	}

	return &permissionEvaluator{
		enforce: enforce,
		logger:  logger,
	}
}

func (p *permissionEvaluator) CanMutate(actor models.Actor, note *models.Note) bool {
	if !p.enforce {
		return actor.User != nil
	}

	resource := actor.AgentOrAsset()
	if resource.HasPermission(models.PermissionManageAgent) || resource.HasPermission(models.PermissionCompanyAdmin) {
		return true
	}

	if note == nil || actor.User == nil {
		return false
	}

	if note.AuthorID != nil && *note.AuthorID == actor.User.PublicID {
		return true
	}

	// older notes carry only the deprecated user field
	if note.User != nil && *note.User == actor.User.PublicID {
		return true
	}

	return false
}
