package export

import (
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// The YAML renderer is hand-rolled over an ordered pair list so key order
// is stable across exports; encoding via a map would shuffle keys.

type yamlRenderer struct{}

func (yamlRenderer) Extension() string           { return "yaml" }
func (yamlRenderer) MIMEType() string            { return "application/x-yaml" }
func (yamlRenderer) SupportsCustomization() bool { return true }

type yamlPair struct {
	key   string
	value any
}

type yamlMap []yamlPair

func (yamlRenderer) Render(doc *prompt.Prompt, opts Options) (string, error) {
	f := effectiveFormatting(opts)

	root := yamlMap{
		{"title", doc.Title},
		{"structure_type", string(doc.StructureType)},
	}

	if opts.IncludeMetadata {
		meta := yamlMap{}
		for _, pair := range metadataPairs(doc) {
			key := strings.ToLower(pair.Key)
			if key == "tags" {
				tags := make([]any, len(doc.Tags))
				for i, tag := range doc.Tags {
					tags[i] = tag
				}
				meta = append(meta, yamlPair{"tags", tags})
				continue
			}
			meta = append(meta, yamlPair{key, pair.Value})
		}
		root = append(root, yamlPair{"metadata", meta})
	}

	if opts.IncludeVersionInfo {
		root = append(root, yamlPair{"version", yamlMap{
			{"major", doc.Version.Major},
			{"minor", doc.Version.Minor},
			{"batch", doc.Version.Batch},
		}})
	}

	root = append(root, yamlPair{"content", yamlContent(doc)})

	var b strings.Builder
	if f.Comments {
		fmt.Fprintf(&b, "# %s\n", doc.Title)
	}
	writeYAML(&b, root, 0, f.Indentation)
	return b.String(), nil
}

func yamlContent(doc *prompt.Prompt) yamlMap {
	switch doc.StructureType {
	case prompt.StructureStandard:
		items := make([]any, 0, len(doc.Content.Segments))
		for _, seg := range orderedSegments(doc.Content.Segments) {
			items = append(items, yamlMap{
				{"id", seg.ID},
				{"type", string(seg.Type)},
				{"content", seg.Content},
				{"order", seg.Order},
			})
		}
		return yamlMap{{"segments", items}}
	case prompt.StructureStructured:
		items := make([]any, 0, len(doc.Content.Sections))
		for _, sec := range orderedSections(doc.Content.Sections) {
			items = append(items, yamlMap{
				{"id", sec.ID},
				{"title", sec.Title},
				{"description", sec.Description},
				{"content", sec.Content},
				{"order", sec.Order},
			})
		}
		return yamlMap{{"sections", items}}
	case prompt.StructureModulized:
		items := make([]any, 0, len(doc.Content.Modules))
		for _, mod := range orderedModules(doc.Content.Modules) {
			items = append(items, yamlModule(mod))
		}
		return yamlMap{{"modules", items}}
	case prompt.StructureAdvanced:
		items := make([]any, 0, len(doc.Content.Blocks))
		for _, blk := range orderedBlocks(doc.Content.Blocks) {
			modules := make([]any, 0, len(blk.Modules))
			for _, mod := range orderedModules(blk.Modules) {
				modules = append(modules, yamlModule(mod))
			}
			assets := make([]any, 0, len(blk.Assets))
			for _, asset := range blk.Assets {
				assets = append(assets, yamlMap{
					{"id", asset.ID},
					{"type", string(asset.Type)},
					{"reference", asset.Reference},
				})
			}
			items = append(items, yamlMap{
				{"id", blk.ID},
				{"title", blk.Title},
				{"description", blk.Description},
				{"modules", modules},
				{"assets", assets},
				{"order", blk.Order},
			})
		}
		return yamlMap{{"blocks", items}}
	}
	return yamlMap{}
}

func yamlModule(mod prompt.Module) yamlMap {
	wrappers := make([]any, len(mod.Wrappers))
	for i, w := range mod.Wrappers {
		wrappers[i] = w
	}
	return yamlMap{
		{"id", mod.ID},
		{"title", mod.Title},
		{"description", mod.Description},
		{"content", mod.Content},
		{"wrappers", wrappers},
		{"order", mod.Order},
	}
}

// writeYAML recursively renders a value: scalars on the key line, nested
// maps one level deeper, arrays as "- " items with a lone "-" introducing
// nested maps.
func writeYAML(b *strings.Builder, m yamlMap, depth, width int) {
	indent := strings.Repeat(" ", depth*width)
	for _, pair := range m {
		switch v := pair.value.(type) {
		case yamlMap:
			fmt.Fprintf(b, "%s%s:\n", indent, pair.key)
			writeYAML(b, v, depth+1, width)
		case []any:
			if len(v) == 0 {
				fmt.Fprintf(b, "%s%s: []\n", indent, pair.key)
				continue
			}
			fmt.Fprintf(b, "%s%s:\n", indent, pair.key)
			itemIndent := strings.Repeat(" ", (depth+1)*width)
			for _, item := range v {
				if nested, ok := item.(yamlMap); ok {
					fmt.Fprintf(b, "%s-\n", itemIndent)
					writeYAML(b, nested, depth+2, width)
					continue
				}
				fmt.Fprintf(b, "%s- %s\n", itemIndent, yamlScalar(item))
			}
		default:
			fmt.Fprintf(b, "%s%s: %s\n", indent, pair.key, yamlScalar(v))
		}
	}
}

func yamlScalar(v any) string {
	switch s := v.(type) {
	case string:
		return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s) + `"`
	default:
		return fmt.Sprintf("%v", v)
	}
}
