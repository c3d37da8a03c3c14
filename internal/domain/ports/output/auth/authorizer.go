package auth

import (
	model "pinstack-publish-service/internal/domain/models"
)

// Authorizer answers whether actor may exercise capability inside workspace.
// It returns ErrForbidden when not.
type Authorizer interface {
	Authorize(actor model.Actor, workspaceID int64, capability model.Capability) error
}
