package prompt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/domain/prompt"
	"github.com/halverson/promptforge/internal/repository"
	"github.com/halverson/promptforge/internal/repository/mocks"
)

func TestPromptService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	activities := &mocks.ActivityRepository{}
	svc := prompt.NewService(repo, activities, sequentialIDs(), nil)

	repo.On("Create", ctx, "owner1", mock.AnythingOfType("*prompt.Prompt")).Return(nil)
	activities.On("Log", ctx, "owner1", mock.Anything).Return(nil)

	created, err := svc.Create(ctx, "owner1", prompt.CreateRequest{
		Title:         "Greeting",
		StructureType: prompt.StructureStandard,
		Content: prompt.Content{
			Segments: []prompt.Segment{{Type: prompt.SegmentSystem, Content: "Say hello."}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "owner1", created.OwnerID)
	assert.Equal(t, prompt.VersionNumber{Major: 1}, created.Version)
	assert.NotEmpty(t, created.ID)
	require.Len(t, created.Content.Segments, 1)
	assert.NotEmpty(t, created.Content.Segments[0].ID)
	assert.Equal(t, 0, created.Content.Segments[0].Order)
	assert.False(t, created.CreatedAt.IsZero())

	repo.AssertExpectations(t)
	activities.AssertExpectations(t)
}

func TestPromptService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	svc := prompt.NewService(repo, nil, nil, nil)

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.Create(ctx, "owner1", prompt.CreateRequest{
			StructureType: prompt.StructureStandard,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})

	t.Run("content shape mismatch", func(t *testing.T) {
		_, err := svc.Create(ctx, "owner1", prompt.CreateRequest{
			Title:         "Mismatch",
			StructureType: prompt.StructureStandard,
			Content: prompt.Content{
				Modules: []prompt.Module{{Title: "M", Content: "x"}},
			},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPromptService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		svc := prompt.NewService(repo, nil, nil, nil)

		repo.On("Get", ctx, "owner1", "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.Get(ctx, "owner1", "missing")
		assert.ErrorIs(t, err, prompt.ErrPromptNotFound)
	})

	t.Run("repairs stored content", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		svc := prompt.NewService(repo, nil, sequentialIDs(), nil)

		stored := &prompt.Prompt{
			ID:            "p1",
			OwnerID:       "owner1",
			Title:         "Legacy",
			StructureType: prompt.StructureStandard,
			Content: prompt.Content{
				Segments: []prompt.Segment{{Type: prompt.SegmentSystem, Content: "x", Order: 5}},
			},
		}
		repo.On("Get", ctx, "owner1", "p1").Return(stored, nil)

		got, err := svc.Get(ctx, "owner1", "p1")
		require.NoError(t, err)
		assert.NotEmpty(t, got.Content.Segments[0].ID)
		assert.Equal(t, 0, got.Content.Segments[0].Order)
	})
}

func TestPromptService_Update(t *testing.T) {
	ctx := context.Background()
	current := &prompt.Prompt{
		ID:            "p1",
		OwnerID:       "owner1",
		Title:         "Before",
		StructureType: prompt.StructureModulized,
		Content: prompt.Content{
			Modules: []prompt.Module{{ID: "m1", Title: "Core", Content: "x", Order: 0}},
		},
		Version: prompt.VersionNumber{Major: 1},
	}

	t.Run("updates provided fields only", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		activities := &mocks.ActivityRepository{}
		svc := prompt.NewService(repo, activities, nil, nil)

		repo.On("Get", ctx, "owner1", "p1").Return(current, nil)
		repo.On("Update", ctx, "owner1", mock.AnythingOfType("*prompt.Prompt")).Return(nil)
		activities.On("Log", ctx, "owner1", mock.Anything).Return(nil)

		title := "After"
		updated, err := svc.Update(ctx, "owner1", prompt.UpdateRequest{ID: "p1", Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, current.Content, updated.Content)
		assert.Equal(t, current.StructureType, updated.StructureType)
	})

	t.Run("rejects mismatched content shape", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		svc := prompt.NewService(repo, nil, nil, nil)

		repo.On("Get", ctx, "owner1", "p1").Return(current, nil)

		content := prompt.Content{
			Segments: []prompt.Segment{{Type: prompt.SegmentSystem, Content: "x"}},
		}
		_, err := svc.Update(ctx, "owner1", prompt.UpdateRequest{ID: "p1", Content: &content})
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects structure type change", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		svc := prompt.NewService(repo, nil, nil, nil)

		repo.On("Get", ctx, "owner1", "p1").Return(current, nil)

		st := prompt.StructureStandard
		_, err := svc.Update(ctx, "owner1", prompt.UpdateRequest{ID: "p1", StructureType: &st})
		assert.ErrorIs(t, err, prompt.ErrStructureTypeFixed)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("accepts unchanged structure type", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		svc := prompt.NewService(repo, nil, nil, nil)

		repo.On("Get", ctx, "owner1", "p1").Return(current, nil)
		repo.On("Update", ctx, "owner1", mock.AnythingOfType("*prompt.Prompt")).Return(nil)

		st := prompt.StructureModulized
		_, err := svc.Update(ctx, "owner1", prompt.UpdateRequest{ID: "p1", StructureType: &st})
		require.NoError(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := prompt.NewService(&mocks.PromptRepository{}, nil, nil, nil)
		_, err := svc.Update(ctx, "owner1", prompt.UpdateRequest{})
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})
}

func TestPromptService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	svc := prompt.NewService(repo, nil, nil, nil)

	repo.On("Delete", ctx, "owner1", "missing").Return(repository.ErrNotFound)

	err := svc.Delete(ctx, "owner1", "missing")
	assert.ErrorIs(t, err, prompt.ErrPromptNotFound)
}

func TestPromptService_Engage(t *testing.T) {
	ctx := context.Background()

	t.Run("valid counter", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		activities := &mocks.ActivityRepository{}
		svc := prompt.NewService(repo, activities, nil, nil)

		repo.On("IncrementCounter", ctx, "owner1", "p1", prompt.CounterLikes).Return(nil)
		activities.On("Log", ctx, "owner1", mock.MatchedBy(func(entry *activity.ActivityEntry) bool {
			return entry.ActivityType == activity.TypeEngagement && *entry.PromptID == "p1"
		})).Return(nil)

		require.NoError(t, svc.Engage(ctx, "owner1", "p1", prompt.CounterLikes))
		repo.AssertExpectations(t)
		activities.AssertExpectations(t)
	})

	t.Run("unknown counter", func(t *testing.T) {
		repo := &mocks.PromptRepository{}
		svc := prompt.NewService(repo, nil, nil, nil)

		err := svc.Engage(ctx, "owner1", "p1", "shares")
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
		repo.AssertNotCalled(t, "IncrementCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
