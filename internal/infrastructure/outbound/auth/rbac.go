package auth

import (
	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
)

var roleCapabilities = map[model.Role][]model.Capability{
	model.RoleOwner:    {model.CapabilityView, model.CapabilityCompose, model.CapabilitySubmit, model.CapabilityApprove, model.CapabilityPublish},
	model.RoleAdmin:    {model.CapabilityView, model.CapabilityCompose, model.CapabilitySubmit, model.CapabilityApprove, model.CapabilityPublish},
	model.RoleEditor:   {model.CapabilityView, model.CapabilityCompose, model.CapabilitySubmit},
	model.RoleApprover: {model.CapabilityView, model.CapabilityApprove, model.CapabilityPublish},
	model.RoleViewer:   {model.CapabilityView},
}

// RoleAuthorizer grants capabilities by role within the caller's own
// workspace.
type RoleAuthorizer struct{}

func NewRoleAuthorizer() *RoleAuthorizer {
	return &RoleAuthorizer{}
}

func (RoleAuthorizer) Authorize(actor model.Actor, workspaceID int64, capability model.Capability) error {
	if actor.UserID == 0 {
		return custom_errors.ErrUnauthenticated
	}
	if actor.WorkspaceID != workspaceID {
		return custom_errors.ErrForbidden
	}
	for _, c := range roleCapabilities[actor.Role] {
		if c == capability {
			return nil
		}
	}
	return custom_errors.ErrForbidden
}
