package version

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/halverson/promptforge/internal/diff"
	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/domain/prompt"
	"github.com/halverson/promptforge/internal/repository"
)

// Service handles version snapshots and comparison.
type Service struct {
	versions   Repository
	prompts    PromptRepository
	activities ActivityRepository
	newID      prompt.IDGenerator
	logger     *slog.Logger
}

// NewService creates a new version service.
func NewService(versions Repository, prompts PromptRepository, activities ActivityRepository, newID prompt.IDGenerator, logger *slog.Logger) *Service {
	if newID == nil {
		newID = prompt.NewID
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{versions: versions, prompts: prompts, activities: activities, newID: newID, logger: logger}
}

// CreateRequest describes a version creation request.
type CreateRequest struct {
	PromptID  string    `json:"prompt_id"`
	Level     BumpLevel `json:"level"`
	Changelog string    `json:"changelog"`
	CreatedBy string    `json:"created_by"`
}

// Create promotes the prompt's current state to a new immutable version.
// The prompt's own version number advances to the snapshot's number.
func (s *Service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Version, error) {
	if req.PromptID == "" {
		return nil, ErrInvalidInput
	}
	switch req.Level {
	case BumpMajor, BumpMinor, BumpBatch:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBumpLevel, req.Level)
	}

	p, err := s.prompts.Get(ctx, ownerID, req.PromptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, fmt.Errorf("loading prompt: %w", err)
	}

	next := Bump(p.Version, req.Level)

	snapshot := *p
	snapshot.Version = next

	v := &Version{
		ID:        s.newID(),
		PromptID:  p.ID,
		OwnerID:   ownerID,
		Number:    next,
		Snapshot:  snapshot,
		Changelog: req.Changelog,
		CreatedBy: req.CreatedBy,
		CreatedAt: time.Now(),
	}

	if err := s.versions.Create(ctx, ownerID, v); err != nil {
		return nil, fmt.Errorf("creating version: %w", err)
	}

	p.Version = next
	p.UpdatedAt = v.CreatedAt
	if err := s.prompts.Update(ctx, ownerID, p); err != nil {
		// Undo the snapshot so the history stays consistent with the
		// prompt's version number.
		if derr := s.versions.Delete(ctx, ownerID, v.ID); derr != nil {
			s.logger.Error("failed to undo version snapshot", "version_id", v.ID, "error", derr)
		}
		return nil, fmt.Errorf("advancing prompt version: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, ownerID, &activity.ActivityEntry{
			PromptID:     &p.ID,
			VersionID:    &v.ID,
			ActivityType: activity.TypeVersionCreated,
			Summary:      fmt.Sprintf("created version %s of prompt %s", next.String(), p.ID),
			CreatedAt:    v.CreatedAt,
		})
	}

	s.logger.Info("version created", "prompt_id", p.ID, "number", next.String())
	return v, nil
}

// Get returns a version by ID.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*Version, error) {
	v, err := s.versions.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("getting version: %w", err)
	}
	return v, nil
}

// List returns version infos for a prompt, newest first.
func (s *Service) List(ctx context.Context, ownerID, promptID string) ([]VersionInfo, error) {
	return s.versions.List(ctx, ownerID, promptID)
}

// ComparisonResult bundles a structured comparison with its one-line summary.
type ComparisonResult struct {
	Comparison diff.Comparison `json:"comparison"`
	Summary    string          `json:"summary"`
}

// Compare loads two persisted versions and diffs their snapshots.
func (s *Service) Compare(ctx context.Context, ownerID, fromID, toID string) (*ComparisonResult, error) {
	from, err := s.Get(ctx, ownerID, fromID)
	if err != nil {
		return nil, err
	}
	to, err := s.Get(ctx, ownerID, toID)
	if err != nil {
		return nil, err
	}

	cmp := diff.Compare(&from.Snapshot, &to.Snapshot)
	return &ComparisonResult{
		Comparison: cmp,
		Summary:    diff.Summarize(cmp.Changes),
	}, nil
}
