package mocks

import (
	"context"

	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/domain/prompt"
	"github.com/halverson/promptforge/internal/domain/version"
	"github.com/stretchr/testify/mock"
)

// PromptRepository is a mock for prompt.Repository.
type PromptRepository struct {
	mock.Mock
}

func (m *PromptRepository) Create(ctx context.Context, ownerID string, p *prompt.Prompt) error {
	args := m.Called(ctx, ownerID, p)
	return args.Error(0)
}

func (m *PromptRepository) Get(ctx context.Context, ownerID, id string) (*prompt.Prompt, error) {
	args := m.Called(ctx, ownerID, id)
	if p, ok := args.Get(0).(*prompt.Prompt); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PromptRepository) Update(ctx context.Context, ownerID string, p *prompt.Prompt) error {
	args := m.Called(ctx, ownerID, p)
	return args.Error(0)
}

func (m *PromptRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *PromptRepository) List(ctx context.Context, ownerID string, opts prompt.ListOptions) ([]prompt.PromptSummary, error) {
	args := m.Called(ctx, ownerID, opts)
	if list, ok := args.Get(0).([]prompt.PromptSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PromptRepository) IncrementCounter(ctx context.Context, ownerID, id, counter string) error {
	args := m.Called(ctx, ownerID, id, counter)
	return args.Error(0)
}

// VersionRepository is a mock for version.Repository.
type VersionRepository struct {
	mock.Mock
}

func (m *VersionRepository) Create(ctx context.Context, ownerID string, v *version.Version) error {
	args := m.Called(ctx, ownerID, v)
	return args.Error(0)
}

func (m *VersionRepository) Get(ctx context.Context, ownerID, id string) (*version.Version, error) {
	args := m.Called(ctx, ownerID, id)
	if v, ok := args.Get(0).(*version.Version); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VersionRepository) List(ctx context.Context, ownerID, promptID string) ([]version.VersionInfo, error) {
	args := m.Called(ctx, ownerID, promptID)
	if list, ok := args.Get(0).([]version.VersionInfo); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VersionRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, ownerID string, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, ownerID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, ownerID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, ownerID, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
