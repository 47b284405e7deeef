package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

func TestPromptRepository_Search_Title(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	p1 := testPrompt("p1", "owner1")
	p1.Title = "Quarterly report generator"
	require.NoError(t, repo.Create(ctx, "owner1", p1))

	p2 := testPrompt("p2", "owner1")
	p2.Title = "Code review assistant"
	require.NoError(t, repo.Create(ctx, "owner1", p2))

	summaries, err := repo.List(ctx, "owner1", prompt.ListOptions{Query: "quarterly"})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "p1", summaries[0].ID)
}

func TestPromptRepository_Search_SegmentContent(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	p := testPrompt("p1", "owner1")
	p.Content.Segments[0].Content = "Summarize the xylophone maintenance manual."
	require.NoError(t, repo.Create(ctx, "owner1", p))
	require.NoError(t, repo.Create(ctx, "owner1", testPrompt("p2", "owner1")))

	summaries, err := repo.List(ctx, "owner1", prompt.ListOptions{Query: "xylophone"})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "p1", summaries[0].ID)
}

func TestPromptRepository_Search_OwnerIsolation(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	p := testPrompt("p1", "owner1")
	p.Title = "Xylophone tuning guide"
	require.NoError(t, repo.Create(ctx, "owner1", p))

	summaries, err := repo.List(ctx, "owner2", prompt.ListOptions{Query: "xylophone"})
	require.NoError(t, err)
	require.Empty(t, summaries)
}

func TestPromptRepository_Search_ReflectsUpdates(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	p := testPrompt("p1", "owner1")
	require.NoError(t, repo.Create(ctx, "owner1", p))

	summaries, err := repo.List(ctx, "owner1", prompt.ListOptions{Query: "xylophone"})
	require.NoError(t, err)
	require.Empty(t, summaries)

	p.Title = "Xylophone tuning guide"
	require.NoError(t, repo.Update(ctx, "owner1", p))

	summaries, err = repo.List(ctx, "owner1", prompt.ListOptions{Query: "xylophone"})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	require.NoError(t, repo.Delete(ctx, "owner1", "p1"))

	summaries, err = repo.List(ctx, "owner1", prompt.ListOptions{Query: "xylophone"})
	require.NoError(t, err)
	require.Empty(t, summaries)
}

func TestPromptRepository_Search_WithFilters(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	p1 := testPrompt("p1", "owner1")
	p1.Title = "Xylophone care"
	p1.Category = "music"
	require.NoError(t, repo.Create(ctx, "owner1", p1))

	p2 := testPrompt("p2", "owner1")
	p2.Title = "Xylophone history"
	p2.Category = "writing"
	require.NoError(t, repo.Create(ctx, "owner1", p2))

	summaries, err := repo.List(ctx, "owner1", prompt.ListOptions{Query: "xylophone", Category: "music"})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "p1", summaries[0].ID)
}
