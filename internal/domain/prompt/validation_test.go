package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

func TestValidateCreateInput(t *testing.T) {
	valid := prompt.CreateRequest{
		Title:         "A Prompt",
		StructureType: prompt.StructureStandard,
		Tags:          []string{"one"},
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, prompt.ValidateCreateInput(valid))
	})

	t.Run("missing title", func(t *testing.T) {
		req := valid
		req.Title = ""
		assert.Error(t, prompt.ValidateCreateInput(req))
	})

	t.Run("title too long", func(t *testing.T) {
		req := valid
		req.Title = strings.Repeat("x", 201)
		assert.Error(t, prompt.ValidateCreateInput(req))
	})

	t.Run("unknown structure type", func(t *testing.T) {
		req := valid
		req.StructureType = "freeform"
		assert.Error(t, prompt.ValidateCreateInput(req))
	})

	t.Run("empty tag", func(t *testing.T) {
		req := valid
		req.Tags = []string{""}
		assert.Error(t, prompt.ValidateCreateInput(req))
	})
}

func TestValidateContent(t *testing.T) {
	t.Run("matching shape", func(t *testing.T) {
		c := prompt.Content{
			Segments: []prompt.Segment{{Type: prompt.SegmentSystem, Content: "x"}},
		}
		assert.NoError(t, prompt.ValidateContent(c, prompt.StructureStandard))
	})

	t.Run("empty content is allowed", func(t *testing.T) {
		assert.NoError(t, prompt.ValidateContent(prompt.Content{}, prompt.StructureModulized))
	})

	t.Run("wrong shape for structure type", func(t *testing.T) {
		c := prompt.Content{
			Sections: []prompt.Section{{Title: "Intro", Content: "x"}},
		}
		err := prompt.ValidateContent(c, prompt.StructureStandard)
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})

	t.Run("multiple shapes populated", func(t *testing.T) {
		c := prompt.Content{
			Segments: []prompt.Segment{{Type: prompt.SegmentSystem, Content: "x"}},
			Modules:  []prompt.Module{{Title: "M", Content: "y"}},
		}
		err := prompt.ValidateContent(c, prompt.StructureStandard)
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})

	t.Run("unknown segment type", func(t *testing.T) {
		c := prompt.Content{
			Segments: []prompt.Segment{{Type: "tool", Content: "x"}},
		}
		err := prompt.ValidateContent(c, prompt.StructureStandard)
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})

	t.Run("unknown asset type", func(t *testing.T) {
		c := prompt.Content{
			Blocks: []prompt.Block{{
				Title:  "B",
				Assets: []prompt.Asset{{Type: "video", Reference: "ref"}},
			}},
		}
		err := prompt.ValidateContent(c, prompt.StructureAdvanced)
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})

	t.Run("unknown structure type", func(t *testing.T) {
		err := prompt.ValidateContent(prompt.Content{}, "freeform")
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	})
}
