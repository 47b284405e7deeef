package export

import (
	"sort"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// Renderers never mutate the document, so ordered views are copies.

func orderedSegments(items []prompt.Segment) []prompt.Segment {
	out := make([]prompt.Segment, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func orderedSections(items []prompt.Section) []prompt.Section {
	out := make([]prompt.Section, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func orderedModules(items []prompt.Module) []prompt.Module {
	out := make([]prompt.Module, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func orderedBlocks(items []prompt.Block) []prompt.Block {
	out := make([]prompt.Block, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

type metaPair struct {
	Key   string
	Value string
}

// metadataPairs collects the non-empty metadata fields in a fixed order.
func metadataPairs(doc *prompt.Prompt) []metaPair {
	var pairs []metaPair
	add := func(key, value string) {
		if value != "" {
			pairs = append(pairs, metaPair{Key: key, Value: value})
		}
	}
	add("Description", doc.Description)
	add("Category", doc.Category)
	add("Type", doc.Type)
	add("Language", doc.Language)
	add("Complexity", doc.Complexity)
	add("Tags", strings.Join(doc.Tags, ", "))
	return pairs
}
