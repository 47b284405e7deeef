package export

import (
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// promptyRenderer emits the Prompty DSL: a brace-delimited, comma-separated
// pseudo-struct syntax.
type promptyRenderer struct{}

func (promptyRenderer) Extension() string           { return "prompty" }
func (promptyRenderer) MIMEType() string            { return "text/x-prompty" }
func (promptyRenderer) SupportsCustomization() bool { return true }

func (promptyRenderer) Render(doc *prompt.Prompt, opts Options) (string, error) {
	f := effectiveFormatting(opts)
	pad := strings.Repeat(" ", f.Indentation)

	var b strings.Builder
	if f.Comments {
		fmt.Fprintf(&b, "// %s\n", doc.Title)
	}
	fmt.Fprintf(&b, "PROMPT %s VERSION %s {\n", quote(doc.Title), doc.Version.String())

	if opts.IncludeMetadata {
		var fields []string
		for _, pair := range metadataPairs(doc) {
			if pair.Key == "Tags" {
				continue
			}
			fields = append(fields, fmt.Sprintf("%s: %s", strings.ToLower(pair.Key), quote(pair.Value)))
		}
		if len(doc.Tags) > 0 {
			quoted := make([]string, len(doc.Tags))
			for i, tag := range doc.Tags {
				quoted[i] = quote(tag)
			}
			fields = append(fields, fmt.Sprintf("tags: [%s]", strings.Join(quoted, ", ")))
		}
		fmt.Fprintf(&b, "%sMETADATA {\n", pad)
		for i, field := range fields {
			comma := ","
			if i == len(fields)-1 {
				comma = ""
			}
			fmt.Fprintf(&b, "%s%s%s\n", pad+pad, field, comma)
		}
		fmt.Fprintf(&b, "%s}\n", pad)
	}

	switch doc.StructureType {
	case prompt.StructureStandard:
		for _, seg := range orderedSegments(doc.Content.Segments) {
			fmt.Fprintf(&b, "%sSEGMENT %s {\n", pad, seg.Type)
			fmt.Fprintf(&b, "%scontent: %s\n", pad+pad, quote(seg.Content))
			fmt.Fprintf(&b, "%s}\n", pad)
		}
	case prompt.StructureStructured:
		for _, sec := range orderedSections(doc.Content.Sections) {
			fmt.Fprintf(&b, "%sSECTION %s {\n", pad, quote(sec.Title))
			writeFields(&b, pad+pad,
				optionalField("description", sec.Description),
				fmt.Sprintf("content: %s", quote(sec.Content)))
			fmt.Fprintf(&b, "%s}\n", pad)
		}
	case prompt.StructureModulized:
		for _, mod := range orderedModules(doc.Content.Modules) {
			writePromptyModule(&b, mod, pad, pad)
		}
	case prompt.StructureAdvanced:
		for _, blk := range orderedBlocks(doc.Content.Blocks) {
			fmt.Fprintf(&b, "%sBLOCK %s {\n", pad, quote(blk.Title))
			if blk.Description != "" {
				fmt.Fprintf(&b, "%sdescription: %s\n", pad+pad, quote(blk.Description))
			}
			for _, mod := range orderedModules(blk.Modules) {
				writePromptyModule(&b, mod, pad+pad, pad)
			}
			for _, asset := range blk.Assets {
				fmt.Fprintf(&b, "%sASSET %s %s\n", pad+pad, asset.Type, quote(asset.Reference))
			}
			fmt.Fprintf(&b, "%s}\n", pad)
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}

func writePromptyModule(b *strings.Builder, mod prompt.Module, indent, pad string) {
	fmt.Fprintf(b, "%sMODULE %s {\n", indent, quote(mod.Title))
	var fields []string
	if mod.Description != "" {
		fields = append(fields, fmt.Sprintf("description: %s", quote(mod.Description)))
	}
	if len(mod.Wrappers) > 0 {
		quoted := make([]string, len(mod.Wrappers))
		for i, w := range mod.Wrappers {
			quoted[i] = quote(w)
		}
		fields = append(fields, fmt.Sprintf("wrappers: [%s]", strings.Join(quoted, ", ")))
	}
	fields = append(fields, fmt.Sprintf("content: %s", quote(mod.Content)))
	writeFields(b, indent+pad, fields...)
	fmt.Fprintf(b, "%s}\n", indent)
}

func writeFields(b *strings.Builder, indent string, fields ...string) {
	present := fields[:0]
	for _, field := range fields {
		if field != "" {
			present = append(present, field)
		}
	}
	for i, field := range present {
		comma := ","
		if i == len(present)-1 {
			comma = ""
		}
		fmt.Fprintf(b, "%s%s%s\n", indent, field, comma)
	}
}

func optionalField(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", name, quote(value))
}

// quote wraps a value in double quotes with embedded quotes escaped as \".
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
