// Package diff computes structured, human-readable differences between two
// versions of a prompt. Comparison is pure: it never mutates its inputs and
// allocates a fresh change list per call.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// ChangeType categorizes a single change.
type ChangeType string

const (
	Added    ChangeType = "added"
	Removed  ChangeType = "removed"
	Modified ChangeType = "modified"
)

// Change is one atomic difference between two prompt versions. Path is a
// dotted address into the document, e.g. "modules.<id>.content".
type Change struct {
	Type        ChangeType `json:"type"`
	Path        string     `json:"path"`
	OldValue    any        `json:"old_value,omitempty"`
	NewValue    any        `json:"new_value,omitempty"`
	Description string     `json:"description"`
}

// Comparison is the full result of comparing two prompts.
type Comparison struct {
	From    *prompt.Prompt `json:"from"`
	To      *prompt.Prompt `json:"to"`
	Changes []Change       `json:"changes"`
}

// Compare produces the ordered change list between two prompts: scalar
// fields first, then tags, then the populated content shape. Comparing a
// prompt to itself yields an empty list.
func Compare(from, to *prompt.Prompt) Comparison {
	changes := []Change{}

	changes = append(changes, compareScalars(from, to)...)
	changes = append(changes, compareTags(from.Tags, to.Tags)...)

	if from.StructureType != to.StructureType {
		// Content shapes are not comparable across structure types;
		// report the transition once and skip reconciliation.
		changes = append(changes, Change{
			Type:        Modified,
			Path:        "content",
			OldValue:    from.StructureType,
			NewValue:    to.StructureType,
			Description: fmt.Sprintf("Structure changed from %q to %q; content not comparable", from.StructureType, to.StructureType),
		})
	} else {
		changes = append(changes, compareContent(from.StructureType, from.Content, to.Content)...)
	}

	return Comparison{From: from, To: to, Changes: changes}
}

func compareScalars(from, to *prompt.Prompt) []Change {
	var changes []Change

	fields := []struct {
		name     string
		old, new string
	}{
		{"title", from.Title, to.Title},
		{"description", from.Description, to.Description},
		{"structure_type", string(from.StructureType), string(to.StructureType)},
		{"category", from.Category, to.Category},
		{"complexity", from.Complexity, to.Complexity},
	}

	for _, f := range fields {
		if f.old != f.new {
			changes = append(changes, Change{
				Type:        Modified,
				Path:        f.name,
				OldValue:    f.old,
				NewValue:    f.new,
				Description: fmt.Sprintf("%s changed from %q to %q", fieldLabel(f.name), f.old, f.new),
			})
		}
	}

	return changes
}

// compareTags treats tags as an unordered set.
func compareTags(from, to []string) []Change {
	fromSet := make(map[string]bool, len(from))
	for _, tag := range from {
		fromSet[tag] = true
	}
	toSet := make(map[string]bool, len(to))
	for _, tag := range to {
		toSet[tag] = true
	}

	var added, removed []string
	for _, tag := range to {
		if !fromSet[tag] {
			added = append(added, tag)
		}
	}
	for _, tag := range from {
		if !toSet[tag] {
			removed = append(removed, tag)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)

	var changes []Change
	if len(added) > 0 {
		changes = append(changes, Change{
			Type:        Added,
			Path:        "tags",
			NewValue:    added,
			Description: fmt.Sprintf("Tags added: %s", strings.Join(added, ", ")),
		})
	}
	if len(removed) > 0 {
		changes = append(changes, Change{
			Type:        Removed,
			Path:        "tags",
			OldValue:    removed,
			Description: fmt.Sprintf("Tags removed: %s", strings.Join(removed, ", ")),
		})
	}
	return changes
}

func compareContent(st prompt.StructureType, from, to prompt.Content) []Change {
	switch st {
	case prompt.StructureStandard:
		return reconcile("segments", from.Segments, to.Segments, segmentID, segmentLabel, diffSegment)
	case prompt.StructureStructured:
		return reconcile("sections", from.Sections, to.Sections, sectionID, sectionLabel, diffSection)
	case prompt.StructureModulized:
		return reconcile("modules", from.Modules, to.Modules, moduleID, moduleLabel, diffModule)
	case prompt.StructureAdvanced:
		return reconcile("blocks", from.Blocks, to.Blocks, blockID, blockLabel, diffBlock)
	}
	return nil
}

func segmentID(s prompt.Segment) string    { return s.ID }
func segmentLabel(s prompt.Segment) string { return string(s.Type) + " segment" }

func sectionID(s prompt.Section) string    { return s.ID }
func sectionLabel(s prompt.Section) string { return fmt.Sprintf("section %q", s.Title) }

func moduleID(m prompt.Module) string    { return m.ID }
func moduleLabel(m prompt.Module) string { return fmt.Sprintf("module %q", m.Title) }

func blockID(b prompt.Block) string    { return b.ID }
func blockLabel(b prompt.Block) string { return fmt.Sprintf("block %q", b.Title) }

func diffSegment(prefix string, before, after prompt.Segment) []Change {
	var changes []Change
	if before.Type != after.Type {
		changes = append(changes, fieldChange(prefix, "type", string(before.Type), string(after.Type)))
	}
	if before.Content != after.Content {
		changes = append(changes, fieldChange(prefix, "content", before.Content, after.Content))
	}
	return changes
}

func diffSection(prefix string, before, after prompt.Section) []Change {
	var changes []Change
	if before.Title != after.Title {
		changes = append(changes, fieldChange(prefix, "title", before.Title, after.Title))
	}
	if before.Description != after.Description {
		changes = append(changes, fieldChange(prefix, "description", before.Description, after.Description))
	}
	if before.Content != after.Content {
		changes = append(changes, fieldChange(prefix, "content", before.Content, after.Content))
	}
	return changes
}

func diffModule(prefix string, before, after prompt.Module) []Change {
	var changes []Change
	if before.Title != after.Title {
		changes = append(changes, fieldChange(prefix, "title", before.Title, after.Title))
	}
	if before.Description != after.Description {
		changes = append(changes, fieldChange(prefix, "description", before.Description, after.Description))
	}
	if before.Content != after.Content {
		changes = append(changes, fieldChange(prefix, "content", before.Content, after.Content))
	}
	// The wrapper sequence is ordered; a reorder is a real change.
	if !equalStrings(before.Wrappers, after.Wrappers) {
		changes = append(changes, Change{
			Type:        Modified,
			Path:        prefix + ".wrappers",
			OldValue:    before.Wrappers,
			NewValue:    after.Wrappers,
			Description: fmt.Sprintf("Wrappers changed from [%s] to [%s]", strings.Join(before.Wrappers, ", "), strings.Join(after.Wrappers, ", ")),
		})
	}
	return changes
}

func diffBlock(prefix string, before, after prompt.Block) []Change {
	var changes []Change
	if before.Title != after.Title {
		changes = append(changes, fieldChange(prefix, "title", before.Title, after.Title))
	}
	if before.Description != after.Description {
		changes = append(changes, fieldChange(prefix, "description", before.Description, after.Description))
	}
	changes = append(changes, reconcile(prefix+".modules", before.Modules, after.Modules, moduleID, moduleLabel, diffModule)...)
	return changes
}

func fieldChange(prefix, field, oldValue, newValue string) Change {
	return Change{
		Type:        Modified,
		Path:        prefix + "." + field,
		OldValue:    oldValue,
		NewValue:    newValue,
		Description: fmt.Sprintf("%s changed from %q to %q", fieldLabel(field), oldValue, newValue),
	}
}

func fieldLabel(field string) string {
	switch field {
	case "structure_type":
		return "Structure type"
	case "title":
		return "Title"
	case "description":
		return "Description"
	case "content":
		return "Content"
	case "category":
		return "Category"
	case "complexity":
		return "Complexity"
	case "type":
		return "Type"
	}
	return field
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

