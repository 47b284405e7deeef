package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

func standardPrompt() *prompt.Prompt {
	return &prompt.Prompt{
		ID:            "p1",
		Title:         "Reviewer",
		Description:   "Reviews code",
		StructureType: prompt.StructureStandard,
		Category:      "engineering",
		Tags:          []string{"code", "review"},
		Content: prompt.Content{
			Segments: []prompt.Segment{
				{ID: "s1", Type: prompt.SegmentSystem, Content: "You review code.", Order: 0},
				{ID: "s2", Type: prompt.SegmentUser, Content: "Review this.", Order: 1},
			},
		},
	}
}

func TestCompare_Identical(t *testing.T) {
	a := standardPrompt()
	b := standardPrompt()

	result := Compare(a, b)
	assert.Empty(t, result.Changes)
	assert.Equal(t, "No changes detected", Summarize(result.Changes))
}

func TestCompare_ScalarFields(t *testing.T) {
	a := standardPrompt()
	b := standardPrompt()
	b.Title = "Code Reviewer"
	b.Category = "development"

	changes := Compare(a, b).Changes
	require.Len(t, changes, 2)

	assert.Equal(t, Modified, changes[0].Type)
	assert.Equal(t, "title", changes[0].Path)
	assert.Equal(t, "Reviewer", changes[0].OldValue)
	assert.Equal(t, "Code Reviewer", changes[0].NewValue)
	assert.Equal(t, `Title changed from "Reviewer" to "Code Reviewer"`, changes[0].Description)

	assert.Equal(t, "category", changes[1].Path)
}

func TestCompare_TagsIgnoreOrder(t *testing.T) {
	a := standardPrompt()
	b := standardPrompt()
	b.Tags = []string{"review", "code"}

	assert.Empty(t, Compare(a, b).Changes)
}

func TestCompare_TagsAddedAndRemoved(t *testing.T) {
	a := standardPrompt()
	b := standardPrompt()
	b.Tags = []string{"review", "golang", "agents"}

	changes := Compare(a, b).Changes
	require.Len(t, changes, 2)

	assert.Equal(t, Added, changes[0].Type)
	assert.Equal(t, "tags", changes[0].Path)
	assert.Equal(t, []string{"agents", "golang"}, changes[0].NewValue)
	assert.Equal(t, "Tags added: agents, golang", changes[0].Description)

	assert.Equal(t, Removed, changes[1].Type)
	assert.Equal(t, []string{"code"}, changes[1].OldValue)
	assert.Equal(t, "Tags removed: code", changes[1].Description)
}

func TestCompare_SegmentContentModified(t *testing.T) {
	a := standardPrompt()
	b := standardPrompt()
	b.Content.Segments[1].Content = "Review this pull request."

	changes := Compare(a, b).Changes
	require.Len(t, changes, 1)
	assert.Equal(t, Modified, changes[0].Type)
	assert.Equal(t, "segments.s2.content", changes[0].Path)
	assert.Equal(t, "Review this.", changes[0].OldValue)
	assert.Equal(t, "Review this pull request.", changes[0].NewValue)
}

func TestCompare_SegmentAddedAndRemoved(t *testing.T) {
	a := standardPrompt()
	b := standardPrompt()
	b.Content.Segments = []prompt.Segment{
		a.Content.Segments[0],
		{ID: "s3", Type: prompt.SegmentContext, Content: "Repo uses Go 1.25.", Order: 1},
	}

	changes := Compare(a, b).Changes
	require.Len(t, changes, 2)

	// Added first, then removed, each ordered by id.
	assert.Equal(t, Added, changes[0].Type)
	assert.Equal(t, "segments.s3", changes[0].Path)
	assert.Equal(t, "Added context segment", changes[0].Description)

	assert.Equal(t, Removed, changes[1].Type)
	assert.Equal(t, "segments.s2", changes[1].Path)
	assert.Equal(t, "Removed user segment", changes[1].Description)
}

func TestCompare_ModuleWrappers(t *testing.T) {
	base := func() *prompt.Prompt {
		return &prompt.Prompt{
			Title:         "Wrapped",
			StructureType: prompt.StructureModulized,
			Content: prompt.Content{
				Modules: []prompt.Module{
					{ID: "m1", Title: "Core", Content: "Do it.", Wrappers: []string{"format-json", "summarize"}, Order: 0},
				},
			},
		}
	}

	t.Run("reorder is a change", func(t *testing.T) {
		a := base()
		b := base()
		b.Content.Modules[0].Wrappers = []string{"summarize", "format-json"}

		changes := Compare(a, b).Changes
		require.Len(t, changes, 1)
		assert.Equal(t, "modules.m1.wrappers", changes[0].Path)
		assert.Equal(t, "Wrappers changed from [format-json, summarize] to [summarize, format-json]", changes[0].Description)
	})

	t.Run("identical sequence is not", func(t *testing.T) {
		assert.Empty(t, Compare(base(), base()).Changes)
	})
}

func TestCompare_StructureTypeChanged(t *testing.T) {
	a := standardPrompt()
	b := &prompt.Prompt{
		Title:         a.Title,
		Description:   a.Description,
		StructureType: prompt.StructureStructured,
		Category:      a.Category,
		Tags:          a.Tags,
		Content: prompt.Content{
			Sections: []prompt.Section{
				{ID: "sec1", Title: "Role", Content: "You review code.", Order: 0},
			},
		},
	}

	changes := Compare(a, b).Changes
	require.Len(t, changes, 2)

	assert.Equal(t, "structure_type", changes[0].Path)

	// Content is reported as a single transition, not element by element.
	assert.Equal(t, Modified, changes[1].Type)
	assert.Equal(t, "content", changes[1].Path)
	assert.Equal(t, `Structure changed from "standard" to "structured"; content not comparable`, changes[1].Description)
}

func TestCompare_AdvancedNestedModules(t *testing.T) {
	base := func() *prompt.Prompt {
		return &prompt.Prompt{
			Title:         "Pipeline",
			StructureType: prompt.StructureAdvanced,
			Content: prompt.Content{
				Blocks: []prompt.Block{
					{
						ID:    "b1",
						Title: "Stage One",
						Modules: []prompt.Module{
							{ID: "m1", Title: "Ingest", Content: "Read input.", Order: 0},
						},
						Order: 0,
					},
				},
			},
		}
	}

	a := base()
	b := base()
	b.Content.Blocks[0].Title = "Intake"
	b.Content.Blocks[0].Modules[0].Content = "Read and clean input."

	changes := Compare(a, b).Changes
	require.Len(t, changes, 2)
	assert.Equal(t, "blocks.b1.title", changes[0].Path)
	assert.Equal(t, "blocks.b1.modules.m1.content", changes[1].Path)
}

func TestCompare_DoesNotMutateInputs(t *testing.T) {
	a := standardPrompt()
	b := standardPrompt()
	b.Content.Segments[0].Content = "changed"

	_ = Compare(a, b)
	assert.Equal(t, "You review code.", a.Content.Segments[0].Content)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		changes []Change
		want    string
	}{
		{"empty", nil, "No changes detected"},
		{"single addition", []Change{{Type: Added}}, "1 addition"},
		{"mixed", []Change{
			{Type: Added}, {Type: Added},
			{Type: Removed},
			{Type: Modified}, {Type: Modified}, {Type: Modified},
		}, "2 additions, 1 removal, 3 modifications"},
		{"only modifications", []Change{{Type: Modified}}, "1 modification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.changes))
		})
	}
}
