package prompt

import (
	"fmt"
	"time"
)

// StructureType selects which of the four content shapes a prompt uses.
// It is fixed at creation time.
type StructureType string

const (
	StructureStandard   StructureType = "standard"   // flat segments
	StructureStructured StructureType = "structured" // titled sections
	StructureModulized  StructureType = "modulized"  // modules with wrappers
	StructureAdvanced   StructureType = "advanced"   // blocks of modules + assets
)

// StructureTypes lists every valid structure type.
var StructureTypes = []StructureType{
	StructureStandard,
	StructureStructured,
	StructureModulized,
	StructureAdvanced,
}

// SegmentType classifies a segment's role in the conversation.
type SegmentType string

const (
	SegmentSystem      SegmentType = "system"
	SegmentUser        SegmentType = "user"
	SegmentAssistant   SegmentType = "assistant"
	SegmentContext     SegmentType = "context"
	SegmentInstruction SegmentType = "instruction"
)

// AssetType classifies an external reference attached to a block.
type AssetType string

const (
	AssetPromptReference AssetType = "prompt-reference"
	AssetFile            AssetType = "file"
	AssetURL             AssetType = "url"
	AssetImage           AssetType = "image"
)

// Segment is one entry of a standard prompt.
type Segment struct {
	ID      string      `json:"id"`
	Type    SegmentType `json:"type"`
	Content string      `json:"content"`
	Order   int         `json:"order"`
}

// Section is one entry of a structured prompt.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
	Order       int    `json:"order"`
}

// Module is one entry of a modulized prompt. Wrappers name post-processing
// transforms applied conceptually in list order; they are recorded and
// rendered, never executed here.
type Module struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content"`
	Wrappers    []string       `json:"wrappers,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	Order       int            `json:"order"`
}

// Block is one entry of an advanced prompt: nested modules plus external
// asset references.
type Block struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Modules     []Module `json:"modules,omitempty"`
	Assets      []Asset  `json:"assets,omitempty"`
	Order       int      `json:"order"`
}

// Asset is a typed pointer to external content. The referenced content is
// never inlined.
type Asset struct {
	ID          string    `json:"id"`
	Type        AssetType `json:"type"`
	Reference   string    `json:"reference"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Content holds the four mutually exclusive content shapes. Exactly one
// list is populated, chosen by the owning prompt's StructureType; shape
// dispatch must always switch on the structure type, never inspect the
// slices directly.
type Content struct {
	Segments []Segment `json:"segments,omitempty"`
	Sections []Section `json:"sections,omitempty"`
	Modules  []Module  `json:"modules,omitempty"`
	Blocks   []Block   `json:"blocks,omitempty"`
}

// VersionNumber is a three-part version: major.minor.batch.
type VersionNumber struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Batch int `json:"batch"`
}

// Counters tracks engagement with a prompt.
type Counters struct {
	Views int64 `json:"views"`
	Likes int64 `json:"likes"`
	Uses  int64 `json:"uses"`
}

// Prompt is the top-level versioned authoring unit.
type Prompt struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"owner_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	StructureType StructureType `json:"structure_type"`
	Content       Content       `json:"content"`
	Category      string        `json:"category,omitempty"`
	Type          string        `json:"type,omitempty"`
	Language      string        `json:"language,omitempty"`
	Complexity    string        `json:"complexity,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	Version       VersionNumber `json:"version"`
	Counters      Counters      `json:"counters"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PromptSummary is a lightweight representation for listing.
type PromptSummary struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	StructureType StructureType `json:"structure_type"`
	Category      string        `json:"category,omitempty"`
	Complexity    string        `json:"complexity,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	Version       VersionNumber `json:"version"`
	Counters      Counters      `json:"counters"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// String renders the version as "major.minor.batch".
func (v VersionNumber) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Batch)
}
