package export

import (
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

type xmlRenderer struct{}

func (xmlRenderer) Extension() string           { return "xml" }
func (xmlRenderer) MIMEType() string            { return "application/xml" }
func (xmlRenderer) SupportsCustomization() bool { return true }

func (xmlRenderer) Render(doc *prompt.Prompt, opts Options) (string, error) {
	f := effectiveFormatting(opts)
	pad := strings.Repeat(" ", f.Indentation)

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	if f.Comments {
		fmt.Fprintf(&b, "<!-- %s -->\n", strings.ReplaceAll(doc.Title, "--", "- -"))
	}
	b.WriteString("<prompt>\n")
	fmt.Fprintf(&b, "%s<title>%s</title>\n", pad, cdata(doc.Title))
	fmt.Fprintf(&b, "%s<structureType>%s</structureType>\n", pad, doc.StructureType)

	if opts.IncludeMetadata {
		fmt.Fprintf(&b, "%s<metadata>\n", pad)
		for _, pair := range metadataPairs(doc) {
			if pair.Key == "Tags" {
				continue
			}
			tag := strings.ToLower(pair.Key)
			fmt.Fprintf(&b, "%s<%s>%s</%s>\n", pad+pad, tag, cdata(pair.Value), tag)
		}
		if len(doc.Tags) > 0 {
			fmt.Fprintf(&b, "%s<tags>\n", pad+pad)
			for _, tag := range doc.Tags {
				fmt.Fprintf(&b, "%s<tag>%s</tag>\n", pad+pad+pad, cdata(tag))
			}
			fmt.Fprintf(&b, "%s</tags>\n", pad+pad)
		}
		fmt.Fprintf(&b, "%s</metadata>\n", pad)
	}

	if opts.IncludeVersionInfo {
		fmt.Fprintf(&b, "%s<version major=\"%d\" minor=\"%d\" batch=\"%d\"/>\n",
			pad, doc.Version.Major, doc.Version.Minor, doc.Version.Batch)
	}

	fmt.Fprintf(&b, "%s<content>\n", pad)
	switch doc.StructureType {
	case prompt.StructureStandard:
		for _, seg := range orderedSegments(doc.Content.Segments) {
			fmt.Fprintf(&b, "%s<segment type=\"%s\" order=\"%d\">%s</segment>\n",
				pad+pad, seg.Type, seg.Order, cdata(seg.Content))
		}
	case prompt.StructureStructured:
		for _, sec := range orderedSections(doc.Content.Sections) {
			fmt.Fprintf(&b, "%s<section order=\"%d\">\n", pad+pad, sec.Order)
			fmt.Fprintf(&b, "%s<title>%s</title>\n", pad+pad+pad, cdata(sec.Title))
			if sec.Description != "" {
				fmt.Fprintf(&b, "%s<description>%s</description>\n", pad+pad+pad, cdata(sec.Description))
			}
			fmt.Fprintf(&b, "%s<body>%s</body>\n", pad+pad+pad, cdata(sec.Content))
			fmt.Fprintf(&b, "%s</section>\n", pad+pad)
		}
	case prompt.StructureModulized:
		for _, mod := range orderedModules(doc.Content.Modules) {
			writeXMLModule(&b, mod, pad+pad, pad)
		}
	case prompt.StructureAdvanced:
		for _, blk := range orderedBlocks(doc.Content.Blocks) {
			fmt.Fprintf(&b, "%s<block order=\"%d\">\n", pad+pad, blk.Order)
			fmt.Fprintf(&b, "%s<title>%s</title>\n", pad+pad+pad, cdata(blk.Title))
			if blk.Description != "" {
				fmt.Fprintf(&b, "%s<description>%s</description>\n", pad+pad+pad, cdata(blk.Description))
			}
			for _, mod := range orderedModules(blk.Modules) {
				writeXMLModule(&b, mod, pad+pad+pad, pad)
			}
			for _, asset := range blk.Assets {
				fmt.Fprintf(&b, "%s<asset type=\"%s\">%s</asset>\n", pad+pad+pad, asset.Type, cdata(asset.Reference))
			}
			fmt.Fprintf(&b, "%s</block>\n", pad+pad)
		}
	}
	fmt.Fprintf(&b, "%s</content>\n", pad)
	b.WriteString("</prompt>\n")
	return b.String(), nil
}

func writeXMLModule(b *strings.Builder, mod prompt.Module, indent, pad string) {
	fmt.Fprintf(b, "%s<module order=\"%d\">\n", indent, mod.Order)
	fmt.Fprintf(b, "%s<title>%s</title>\n", indent+pad, cdata(mod.Title))
	if mod.Description != "" {
		fmt.Fprintf(b, "%s<description>%s</description>\n", indent+pad, cdata(mod.Description))
	}
	if len(mod.Wrappers) > 0 {
		fmt.Fprintf(b, "%s<wrappers>\n", indent+pad)
		for _, w := range mod.Wrappers {
			fmt.Fprintf(b, "%s<wrapper>%s</wrapper>\n", indent+pad+pad, cdata(w))
		}
		fmt.Fprintf(b, "%s</wrappers>\n", indent+pad)
	}
	fmt.Fprintf(b, "%s<body>%s</body>\n", indent+pad, cdata(mod.Content))
	fmt.Fprintf(b, "%s</module>\n", indent)
}

// cdata wraps free text so nothing inside needs escaping. A literal "]]>"
// would close the section early, so it is split across two sections.
func cdata(s string) string {
	s = strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
	return "<![CDATA[" + s + "]]>"
}
