package export

import (
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

type plainTextRenderer struct{}

func (plainTextRenderer) Extension() string           { return "txt" }
func (plainTextRenderer) MIMEType() string            { return "text/plain" }
func (plainTextRenderer) SupportsCustomization() bool { return true }

const plainTextSeparator = 50

func (plainTextRenderer) Render(doc *prompt.Prompt, opts Options) (string, error) {
	f := effectiveFormatting(opts)
	sep := strings.Repeat("=", plainTextSeparator)
	gap := "\n\n"
	if !f.LineBreaks {
		gap = "\n"
	}

	var b strings.Builder
	b.WriteString(doc.Title)
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")

	if opts.IncludeMetadata {
		for _, pair := range metadataPairs(doc) {
			fmt.Fprintf(&b, "%s: %s\n", pair.Key, pair.Value)
		}
	}
	if opts.IncludeVersionInfo {
		fmt.Fprintf(&b, "Version: %s\n", doc.Version.String())
	}
	if opts.IncludeMetadata || opts.IncludeVersionInfo {
		b.WriteString(sep)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	indent := strings.Repeat(" ", f.Indentation)

	switch doc.StructureType {
	case prompt.StructureStandard:
		var parts []string
		for _, seg := range orderedSegments(doc.Content.Segments) {
			parts = append(parts, fmt.Sprintf("[%s]\n%s", strings.ToUpper(string(seg.Type)), seg.Content))
		}
		b.WriteString(strings.Join(parts, gap))
	case prompt.StructureStructured:
		var parts []string
		for _, sec := range orderedSections(doc.Content.Sections) {
			part := fmt.Sprintf("SECTION: %s\n", sec.Title)
			if sec.Description != "" {
				part += sec.Description + "\n"
			}
			part += sec.Content
			parts = append(parts, part)
		}
		b.WriteString(strings.Join(parts, gap))
	case prompt.StructureModulized:
		var parts []string
		for _, mod := range orderedModules(doc.Content.Modules) {
			parts = append(parts, renderPlainModule(mod, ""))
		}
		b.WriteString(strings.Join(parts, gap))
	case prompt.StructureAdvanced:
		var parts []string
		for _, blk := range orderedBlocks(doc.Content.Blocks) {
			part := fmt.Sprintf("BLOCK: %s\n", blk.Title)
			if blk.Description != "" {
				part += blk.Description + "\n"
			}
			var nested []string
			for _, mod := range orderedModules(blk.Modules) {
				nested = append(nested, renderPlainModule(mod, indent))
			}
			for _, asset := range blk.Assets {
				nested = append(nested, fmt.Sprintf("%sASSET (%s): %s", indent, asset.Type, asset.Reference))
			}
			part += strings.Join(nested, gap)
			parts = append(parts, part)
		}
		b.WriteString(strings.Join(parts, gap))
	}

	b.WriteString("\n")
	return b.String(), nil
}

func renderPlainModule(mod prompt.Module, indent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sMODULE: %s\n", indent, mod.Title)
	if mod.Description != "" {
		b.WriteString(indent + mod.Description + "\n")
	}
	if len(mod.Wrappers) > 0 {
		fmt.Fprintf(&b, "%sWRAPPERS: %s\n", indent, strings.Join(mod.Wrappers, ", "))
	}
	b.WriteString(indentLines(mod.Content, indent))
	return b.String()
}

func indentLines(text, indent string) string {
	if indent == "" || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
