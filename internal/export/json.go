package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// jsonRenderer is the only faithful lossless round-trip of the document
// subset; it emits the content structs directly.
type jsonRenderer struct{}

func (jsonRenderer) Extension() string           { return "json" }
func (jsonRenderer) MIMEType() string            { return "application/json" }
func (jsonRenderer) SupportsCustomization() bool { return false }

type jsonMetadata struct {
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"`
	Language    string   `json:"language,omitempty"`
	Complexity  string   `json:"complexity,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type jsonDocument struct {
	Title         string                `json:"title"`
	StructureType prompt.StructureType  `json:"structure_type"`
	Content       prompt.Content        `json:"content"`
	Metadata      *jsonMetadata         `json:"metadata,omitempty"`
	Version       *prompt.VersionNumber `json:"version,omitempty"`
}

func (jsonRenderer) Render(doc *prompt.Prompt, opts Options) (string, error) {
	out := jsonDocument{
		Title:         doc.Title,
		StructureType: doc.StructureType,
		Content:       doc.Content,
	}
	if opts.IncludeMetadata {
		out.Metadata = &jsonMetadata{
			Description: doc.Description,
			Category:    doc.Category,
			Type:        doc.Type,
			Language:    doc.Language,
			Complexity:  doc.Complexity,
			Tags:        doc.Tags,
		}
	}
	if opts.IncludeVersionInfo {
		v := doc.Version
		out.Version = &v
	}

	indent := 2
	if opts.Formatting != nil && opts.Formatting.Indentation > 0 {
		indent = opts.Formatting.Indentation
	}

	data, err := json.MarshalIndent(out, "", strings.Repeat(" ", indent))
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	return string(data) + "\n", nil
}
