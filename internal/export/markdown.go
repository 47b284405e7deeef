package export

import (
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

type markdownRenderer struct{}

func (markdownRenderer) Extension() string           { return "md" }
func (markdownRenderer) MIMEType() string            { return "text/markdown" }
func (markdownRenderer) SupportsCustomization() bool { return true }

func (markdownRenderer) Render(doc *prompt.Prompt, opts Options) (string, error) {
	f := effectiveFormatting(opts)
	gap := "\n\n"
	if !f.LineBreaks {
		gap = "\n"
	}

	var sections []string

	if f.Comments {
		sections = append(sections, fmt.Sprintf("<!-- Exported %s -->", doc.Title))
	}
	sections = append(sections, fmt.Sprintf("# %s", doc.Title))

	if opts.IncludeMetadata || opts.IncludeVersionInfo {
		var items []string
		if opts.IncludeMetadata {
			for _, pair := range metadataPairs(doc) {
				items = append(items, fmt.Sprintf("- **%s**: %s", pair.Key, pair.Value))
			}
		}
		if opts.IncludeVersionInfo {
			items = append(items, fmt.Sprintf("- **Version**: %s", doc.Version.String()))
		}
		if len(items) > 0 {
			sections = append(sections, "## Metadata\n"+strings.Join(items, "\n"))
		}
	}

	body := "## Content"
	switch doc.StructureType {
	case prompt.StructureStandard:
		for _, seg := range orderedSegments(doc.Content.Segments) {
			body += gap + fmt.Sprintf("### %s\n%s", capitalize(string(seg.Type)), seg.Content)
		}
	case prompt.StructureStructured:
		for _, sec := range orderedSections(doc.Content.Sections) {
			body += gap + fmt.Sprintf("### %s\n", sec.Title)
			if sec.Description != "" {
				body += fmt.Sprintf("*%s*\n\n", sec.Description)
			}
			body += sec.Content
		}
	case prompt.StructureModulized:
		for _, mod := range orderedModules(doc.Content.Modules) {
			body += gap + renderMarkdownModule(mod)
		}
	case prompt.StructureAdvanced:
		for _, blk := range orderedBlocks(doc.Content.Blocks) {
			body += gap + fmt.Sprintf("## Block: %s", blk.Title)
			if blk.Description != "" {
				body += "\n" + blk.Description
			}
			for _, mod := range orderedModules(blk.Modules) {
				body += gap + renderMarkdownModule(mod)
			}
			for _, asset := range blk.Assets {
				title := asset.Title
				if title == "" {
					title = asset.Reference
				}
				body += gap + fmt.Sprintf("- **Asset** (%s): [%s](%s)", asset.Type, title, asset.Reference)
			}
		}
	}
	sections = append(sections, body)

	return strings.Join(sections, gap) + "\n", nil
}

func renderMarkdownModule(mod prompt.Module) string {
	out := fmt.Sprintf("### %s\n", mod.Title)
	if mod.Description != "" {
		out += fmt.Sprintf("*%s*\n\n", mod.Description)
	}
	if len(mod.Wrappers) > 0 {
		out += fmt.Sprintf("**Wrappers**: %s\n\n", strings.Join(mod.Wrappers, ", "))
	}
	out += mod.Content
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
