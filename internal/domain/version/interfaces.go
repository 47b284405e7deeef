package version

import (
	"context"

	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/domain/prompt"
)

// Repository provides persistence for version snapshots.
type Repository interface {
	Create(ctx context.Context, ownerID string, v *Version) error
	Get(ctx context.Context, ownerID, id string) (*Version, error)
	List(ctx context.Context, ownerID, promptID string) ([]VersionInfo, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// PromptRepository provides the prompt operations the version service needs.
type PromptRepository interface {
	Get(ctx context.Context, ownerID, id string) (*prompt.Prompt, error)
	Update(ctx context.Context, ownerID string, p *prompt.Prompt) error
}

// ActivityRepository logs version activities.
type ActivityRepository interface {
	Log(ctx context.Context, ownerID string, entry *activity.ActivityEntry) error
}
