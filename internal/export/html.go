package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

type htmlRenderer struct{}

func (htmlRenderer) Extension() string           { return "html" }
func (htmlRenderer) MIMEType() string            { return "text/html" }
func (htmlRenderer) SupportsCustomization() bool { return true }

const htmlStyle = `    body { font-family: -apple-system, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; color: #1a1a2e; }
    .metadata { background: #f4f4f8; border-radius: 8px; padding: 1rem; margin-bottom: 1.5rem; }
    .metadata dt { font-weight: 600; }
    .segment, .section, .module, .block { border: 1px solid #e0e0e8; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
    .block .module { margin: 0.75rem 0 0 1rem; background: #fafafc; }
    pre { white-space: pre-wrap; background: #f8f8fa; padding: 0.75rem; border-radius: 4px; }
    .wrapper { display: inline-block; background: #e4e7ff; border-radius: 999px; padding: 0.1rem 0.6rem; margin-right: 0.3rem; font-size: 0.85em; }
    .type-tag { text-transform: uppercase; font-size: 0.8em; letter-spacing: 0.05em; color: #6b6b8a; }`

func (htmlRenderer) Render(doc *prompt.Prompt, opts Options) (string, error) {
	f := effectiveFormatting(opts)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "  <meta charset=\"utf-8\">\n  <title>%s</title>\n", html.EscapeString(doc.Title))
	b.WriteString("  <style>\n" + htmlStyle + "\n  </style>\n</head>\n<body>\n")
	if f.Comments {
		fmt.Fprintf(&b, "<!-- %s -->\n", html.EscapeString(doc.Title))
	}
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", html.EscapeString(doc.Title))

	if opts.IncludeMetadata || opts.IncludeVersionInfo {
		b.WriteString("  <div class=\"metadata\">\n    <dl>\n")
		if opts.IncludeMetadata {
			for _, pair := range metadataPairs(doc) {
				fmt.Fprintf(&b, "      <dt>%s</dt><dd>%s</dd>\n", pair.Key, html.EscapeString(pair.Value))
			}
		}
		if opts.IncludeVersionInfo {
			fmt.Fprintf(&b, "      <dt>Version</dt><dd>%s</dd>\n", doc.Version.String())
		}
		b.WriteString("    </dl>\n  </div>\n")
	}

	switch doc.StructureType {
	case prompt.StructureStandard:
		for _, seg := range orderedSegments(doc.Content.Segments) {
			b.WriteString("  <div class=\"segment\">\n")
			fmt.Fprintf(&b, "    <span class=\"type-tag\">%s</span>\n", html.EscapeString(string(seg.Type)))
			fmt.Fprintf(&b, "    <pre>%s</pre>\n", html.EscapeString(seg.Content))
			b.WriteString("  </div>\n")
		}
	case prompt.StructureStructured:
		for _, sec := range orderedSections(doc.Content.Sections) {
			b.WriteString("  <div class=\"section\">\n")
			fmt.Fprintf(&b, "    <h2>%s</h2>\n", html.EscapeString(sec.Title))
			if sec.Description != "" {
				fmt.Fprintf(&b, "    <p>%s</p>\n", html.EscapeString(sec.Description))
			}
			fmt.Fprintf(&b, "    <pre>%s</pre>\n", html.EscapeString(sec.Content))
			b.WriteString("  </div>\n")
		}
	case prompt.StructureModulized:
		for _, mod := range orderedModules(doc.Content.Modules) {
			writeHTMLModule(&b, mod)
		}
	case prompt.StructureAdvanced:
		for _, blk := range orderedBlocks(doc.Content.Blocks) {
			b.WriteString("  <div class=\"block\">\n")
			fmt.Fprintf(&b, "    <h2>%s</h2>\n", html.EscapeString(blk.Title))
			if blk.Description != "" {
				fmt.Fprintf(&b, "    <p>%s</p>\n", html.EscapeString(blk.Description))
			}
			for _, mod := range orderedModules(blk.Modules) {
				writeHTMLModule(&b, mod)
			}
			if len(blk.Assets) > 0 {
				b.WriteString("    <ul>\n")
				for _, asset := range blk.Assets {
					title := asset.Title
					if title == "" {
						title = asset.Reference
					}
					fmt.Fprintf(&b, "      <li><a href=\"%s\">%s</a> (%s)</li>\n",
						html.EscapeString(asset.Reference), html.EscapeString(title), asset.Type)
				}
				b.WriteString("    </ul>\n")
			}
			b.WriteString("  </div>\n")
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func writeHTMLModule(b *strings.Builder, mod prompt.Module) {
	b.WriteString("  <div class=\"module\">\n")
	fmt.Fprintf(b, "    <h3>%s</h3>\n", html.EscapeString(mod.Title))
	if mod.Description != "" {
		fmt.Fprintf(b, "    <p>%s</p>\n", html.EscapeString(mod.Description))
	}
	if len(mod.Wrappers) > 0 {
		b.WriteString("    <div>\n")
		for _, w := range mod.Wrappers {
			fmt.Fprintf(b, "      <span class=\"wrapper\">%s</span>\n", html.EscapeString(w))
		}
		b.WriteString("    </div>\n")
	}
	fmt.Fprintf(b, "    <pre>%s</pre>\n", html.EscapeString(mod.Content))
	b.WriteString("  </div>\n")
}
