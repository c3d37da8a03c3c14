package auth

import (
	"testing"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleAuthorizer_Authorize(t *testing.T) {
	all := []model.Capability{
		model.CapabilityView,
		model.CapabilityCompose,
		model.CapabilitySubmit,
		model.CapabilityApprove,
		model.CapabilityPublish,
	}
	granted := map[model.Role][]model.Capability{
		model.RoleOwner:    all,
		model.RoleAdmin:    all,
		model.RoleEditor:   {model.CapabilityView, model.CapabilityCompose, model.CapabilitySubmit},
		model.RoleApprover: {model.CapabilityView, model.CapabilityApprove, model.CapabilityPublish},
		model.RoleViewer:   {model.CapabilityView},
		"intern":           nil,
	}

	authorizer := NewRoleAuthorizer()
	for role, caps := range granted {
		actor := model.Actor{UserID: 1, WorkspaceID: 10, Role: role}
		for _, c := range all {
			want := false
			for _, g := range caps {
				if g == c {
					want = true
				}
			}
			err := authorizer.Authorize(actor, 10, c)
			if want {
				assert.NoError(t, err, "%s should have %s", role, c)
			} else {
				assert.ErrorIs(t, err, custom_errors.ErrForbidden, "%s should not have %s", role, c)
			}
		}
	}
}

func TestRoleAuthorizer_Scope(t *testing.T) {
	authorizer := NewRoleAuthorizer()

	err := authorizer.Authorize(model.Actor{UserID: 1, WorkspaceID: 10, Role: model.RoleOwner}, 11, model.CapabilityView)
	assert.ErrorIs(t, err, custom_errors.ErrForbidden, "owners are scoped to their own workspace")

	err = authorizer.Authorize(model.Actor{WorkspaceID: 10, Role: model.RoleOwner}, 10, model.CapabilityView)
	assert.ErrorIs(t, err, custom_errors.ErrUnauthenticated)
}
