package model

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleEditor   Role = "editor"
	RoleApprover Role = "approver"
	RoleViewer   Role = "viewer"
)

type Capability string

const (
	CapabilityView    Capability = "view"
	CapabilityCompose Capability = "compose"
	CapabilitySubmit  Capability = "submit"
	CapabilityApprove Capability = "approve"
	CapabilityPublish Capability = "publish"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID      int64 `json:"user_id"`
	WorkspaceID int64 `json:"workspace_id"`
	Role        Role  `json:"role"`
}
