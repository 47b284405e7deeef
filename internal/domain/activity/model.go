package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypePromptCreated  ActivityType = "prompt_created"
	TypePromptUpdated  ActivityType = "prompt_updated"
	TypePromptDeleted  ActivityType = "prompt_deleted"
	TypeVersionCreated ActivityType = "version_created"
	TypePromptExported ActivityType = "prompt_exported"
	TypeEngagement     ActivityType = "engagement"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	OwnerID      string       `json:"owner_id"`
	PromptID     *string      `json:"prompt_id,omitempty"`
	VersionID    *string      `json:"version_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
