package model

import "time"

type CreatePostDTO struct {
	WorkspaceID int64             `json:"workspace_id"`
	AuthorID    int64             `json:"author_id"`
	Body        *string           `json:"body,omitempty"`
	Variations  map[string]string `json:"variations,omitempty"`
	MediaItems  []*PostMediaInput `json:"media_items,omitempty"`
	Targets     []*TargetInput    `json:"targets,omitempty"`
}

// UpdatePostDTO carries a content edit. Nil fields are left untouched; a
// non-nil MediaItems replaces the attachment set.
type UpdatePostDTO struct {
	Body       *string           `json:"body,omitempty"`
	Variations map[string]string `json:"variations,omitempty"`
	MediaItems []*PostMediaInput `json:"media_items,omitempty"`
}

type ScheduleDTO struct {
	At       time.Time `json:"at"`
	Timezone string    `json:"timezone"`
}

type RejectDTO struct {
	Reason  string  `json:"reason"`
	Comment *string `json:"comment,omitempty"`
}

// PostFilters narrows ListPosts within a workspace.
type PostFilters struct {
	WorkspaceID int64
	Status      *PostStatus
	Limit       *int
	Offset      *int
}
