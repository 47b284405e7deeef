package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/halverson/promptforge/internal/domain/prompt"
	"github.com/halverson/promptforge/internal/domain/version"
	"github.com/halverson/promptforge/internal/repository"
)

func testVersion(id, promptID, ownerID string, number prompt.VersionNumber) *version.Version {
	snapshot := *testPrompt(promptID, ownerID)
	snapshot.Version = number
	return &version.Version{
		ID:        id,
		PromptID:  promptID,
		OwnerID:   ownerID,
		Number:    number,
		Snapshot:  snapshot,
		Changelog: "test snapshot",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestVersionRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	prompts := NewPromptRepository(db)
	repo := NewVersionRepository(db)
	ctx := context.Background()

	require.NoError(t, prompts.Create(ctx, "owner1", testPrompt("p1", "owner1")))

	v := testVersion("v1", "p1", "owner1", prompt.VersionNumber{Major: 1, Batch: 1})
	require.NoError(t, repo.Create(ctx, "owner1", v))

	retrieved, err := repo.Get(ctx, "owner1", "v1")
	require.NoError(t, err)
	require.Equal(t, v.Number, retrieved.Number)
	require.Equal(t, v.Changelog, retrieved.Changelog)
	require.Equal(t, v.Snapshot.Title, retrieved.Snapshot.Title)
	require.Equal(t, v.Snapshot.Content, retrieved.Snapshot.Content)
}

func TestVersionRepository_Create_MissingPrompt(t *testing.T) {
	db := NewTestDB(t)
	repo := NewVersionRepository(db)

	v := testVersion("v1", "missing", "owner1", prompt.VersionNumber{Major: 1})
	err := repo.Create(context.Background(), "owner1", v)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestVersionRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	prompts := NewPromptRepository(db)
	repo := NewVersionRepository(db)
	ctx := context.Background()

	require.NoError(t, prompts.Create(ctx, "owner1", testPrompt("p1", "owner1")))
	require.NoError(t, repo.Create(ctx, "owner1", testVersion("v1", "p1", "owner1", prompt.VersionNumber{Major: 1})))

	require.ErrorIs(t, repo.Delete(ctx, "owner2", "v1"), repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "owner1", "v1"))
	_, err := repo.Get(ctx, "owner1", "v1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVersionRepository_List_NewestFirst(t *testing.T) {
	db := NewTestDB(t)
	prompts := NewPromptRepository(db)
	repo := NewVersionRepository(db)
	ctx := context.Background()

	require.NoError(t, prompts.Create(ctx, "owner1", testPrompt("p1", "owner1")))

	numbers := []prompt.VersionNumber{
		{Major: 1, Batch: 1},
		{Major: 1, Minor: 1},
		{Major: 2},
		{Major: 1, Minor: 1, Batch: 2},
	}
	for i, n := range numbers {
		v := testVersion(string(rune('a'+i)), "p1", "owner1", n)
		require.NoError(t, repo.Create(ctx, "owner1", v))
	}

	infos, err := repo.List(ctx, "owner1", "p1")
	require.NoError(t, err)
	require.Len(t, infos, 4)
	require.Equal(t, prompt.VersionNumber{Major: 2}, infos[0].Number)
	require.Equal(t, prompt.VersionNumber{Major: 1, Minor: 1, Batch: 2}, infos[1].Number)
	require.Equal(t, prompt.VersionNumber{Major: 1, Minor: 1}, infos[2].Number)
	require.Equal(t, prompt.VersionNumber{Major: 1, Batch: 1}, infos[3].Number)
}

func TestVersionRepository_CascadeDelete(t *testing.T) {
	db := NewTestDB(t)
	prompts := NewPromptRepository(db)
	repo := NewVersionRepository(db)
	ctx := context.Background()

	require.NoError(t, prompts.Create(ctx, "owner1", testPrompt("p1", "owner1")))
	require.NoError(t, repo.Create(ctx, "owner1", testVersion("v1", "p1", "owner1", prompt.VersionNumber{Major: 1, Batch: 1})))

	require.NoError(t, prompts.Delete(ctx, "owner1", "p1"))

	_, err := repo.Get(ctx, "owner1", "v1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
