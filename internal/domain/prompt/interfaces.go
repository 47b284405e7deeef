package prompt

import (
	"context"

	"github.com/halverson/promptforge/internal/domain/activity"
)

// Repository provides persistence for prompts.
type Repository interface {
	Create(ctx context.Context, ownerID string, p *Prompt) error
	Get(ctx context.Context, ownerID, id string) (*Prompt, error)
	Update(ctx context.Context, ownerID string, p *Prompt) error
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string, opts ListOptions) ([]PromptSummary, error)
	IncrementCounter(ctx context.Context, ownerID, id, counter string) error
}

// ActivityRepository logs prompt activities.
type ActivityRepository interface {
	Log(ctx context.Context, ownerID string, entry *activity.ActivityEntry) error
}
