package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/repository"
)

// Service handles prompt business logic.
type Service struct {
	prompts    Repository
	activities ActivityRepository
	newID      IDGenerator
	logger     *slog.Logger
}

// NewService creates a new prompt service. A nil generator falls back to
// the package default; a nil activity repository disables the audit trail.
func NewService(prompts Repository, activities ActivityRepository, newID IDGenerator, logger *slog.Logger) *Service {
	if newID == nil {
		newID = NewID
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{prompts: prompts, activities: activities, newID: newID, logger: logger}
}

// CreateRequest describes a prompt creation request.
type CreateRequest struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	StructureType StructureType `json:"structure_type"`
	Content       Content       `json:"content"`
	Category      string        `json:"category"`
	Type          string        `json:"type"`
	Language      string        `json:"language"`
	Complexity    string        `json:"complexity"`
	Tags          []string      `json:"tags"`
}

// UpdateRequest describes a prompt update request. Nil fields are left
// unchanged. The structure type is fixed at creation; sending a different
// one is rejected with ErrStructureTypeFixed.
type UpdateRequest struct {
	ID            string         `json:"id"`
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	StructureType *StructureType `json:"structure_type,omitempty"`
	Content       *Content       `json:"content,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Type          *string        `json:"type,omitempty"`
	Language      *string        `json:"language,omitempty"`
	Complexity    *string        `json:"complexity,omitempty"`
	Tags          *[]string      `json:"tags,omitempty"`
}

// Create validates, normalizes and persists a new prompt. New prompts start
// at version 1.0.0.
func (s *Service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Prompt, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := ValidateContent(req.Content, req.StructureType); err != nil {
		return nil, err
	}

	content := req.Content
	Normalize(&content, req.StructureType, s.newID)

	now := time.Now()
	p := &Prompt{
		ID:            s.newID(),
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		StructureType: req.StructureType,
		Content:       content,
		Category:      req.Category,
		Type:          req.Type,
		Language:      req.Language,
		Complexity:    req.Complexity,
		Tags:          req.Tags,
		Version:       VersionNumber{Major: 1, Minor: 0, Batch: 0},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.prompts.Create(ctx, ownerID, p); err != nil {
		return nil, fmt.Errorf("creating prompt: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, ownerID, &activity.ActivityEntry{
			PromptID:     &p.ID,
			ActivityType: activity.TypePromptCreated,
			Summary:      fmt.Sprintf("created prompt %s", p.ID),
			CreatedAt:    now,
		})
	}

	s.logger.Info("prompt created", "id", p.ID, "structure_type", p.StructureType)
	return p, nil
}

// Get returns a prompt by ID with its content normalized, so documents
// persisted by older clients that omitted ids or order come back repaired.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*Prompt, error) {
	p, err := s.prompts.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, fmt.Errorf("getting prompt: %w", err)
	}
	Normalize(&p.Content, p.StructureType, s.newID)
	return p, nil
}

// Update applies a field-by-field update to an existing prompt.
func (s *Service) Update(ctx context.Context, ownerID string, req UpdateRequest) (*Prompt, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.prompts.Get(ctx, ownerID, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, fmt.Errorf("loading prompt: %w", err)
	}

	if req.StructureType != nil && *req.StructureType != current.StructureType {
		return nil, ErrStructureTypeFixed
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Content != nil {
		if err := ValidateContent(*req.Content, current.StructureType); err != nil {
			return nil, err
		}
		updated.Content = *req.Content
		Normalize(&updated.Content, updated.StructureType, s.newID)
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Language != nil {
		updated.Language = *req.Language
	}
	if req.Complexity != nil {
		updated.Complexity = *req.Complexity
	}
	if req.Tags != nil {
		updated.Tags = *req.Tags
	}
	updated.UpdatedAt = time.Now()

	if err := s.prompts.Update(ctx, ownerID, &updated); err != nil {
		return nil, fmt.Errorf("updating prompt: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, ownerID, &activity.ActivityEntry{
			PromptID:     &updated.ID,
			ActivityType: activity.TypePromptUpdated,
			Summary:      fmt.Sprintf("updated prompt %s", updated.ID),
			CreatedAt:    updated.UpdatedAt,
		})
	}

	return &updated, nil
}

// Delete removes a prompt and its versions.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.prompts.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPromptNotFound
		}
		return fmt.Errorf("deleting prompt: %w", err)
	}
	if s.activities != nil {
		_ = s.activities.Log(ctx, ownerID, &activity.ActivityEntry{
			PromptID:     &id,
			ActivityType: activity.TypePromptDeleted,
			Summary:      fmt.Sprintf("deleted prompt %s", id),
			CreatedAt:    time.Now(),
		})
	}

	s.logger.Info("prompt deleted", "id", id)
	return nil
}

// List returns prompt summaries matching the options.
func (s *Service) List(ctx context.Context, ownerID string, opts ListOptions) ([]PromptSummary, error) {
	return s.prompts.List(ctx, ownerID, opts)
}

// Engagement counters.
const (
	CounterViews = "views"
	CounterLikes = "likes"
	CounterUses  = "uses"
)

// Engage increments one of the engagement counters.
func (s *Service) Engage(ctx context.Context, ownerID, id, counter string) error {
	switch counter {
	case CounterViews, CounterLikes, CounterUses:
	default:
		return fmt.Errorf("%w: unknown counter %q", ErrInvalidInput, counter)
	}
	if err := s.prompts.IncrementCounter(ctx, ownerID, id, counter); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPromptNotFound
		}
		return fmt.Errorf("incrementing %s: %w", counter, err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, ownerID, &activity.ActivityEntry{
			PromptID:     &id,
			ActivityType: activity.TypeEngagement,
			Summary:      fmt.Sprintf("recorded %s for prompt %s", counter, id),
			CreatedAt:    time.Now(),
		})
	}
	return nil
}
