package activity_test

import (
	"context"
	"testing"

	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()
	ownerID := "owner1"
	promptID := "p1"

	repo := &mocks.ActivityRepository{}
	entry := &activity.ActivityEntry{
		PromptID:     &promptID,
		ActivityType: activity.TypePromptCreated,
		Summary:      "created",
	}

	repo.On("Log", ctx, ownerID, entry).Return(nil)
	repo.On("List", ctx, ownerID, activity.ListActivityOptions{PromptID: &promptID}).Return([]activity.ActivityEntry{}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, ownerID, entry))
	require.False(t, entry.CreatedAt.IsZero())

	_, err := svc.GetRecentActivity(ctx, ownerID, activity.ListActivityOptions{PromptID: &promptID})
	require.NoError(t, err)
}

func TestActivityService_NilEntry(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	err := svc.LogActivity(context.Background(), "owner1", nil)
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}
