// Package export renders a prompt into one of several text formats. Every
// renderer handles all four content shapes; the engine is pure and safe for
// concurrent use.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// FormatID identifies a registered export format.
type FormatID string

const (
	FormatPlainText FormatID = "plain-text"
	FormatMarkdown  FormatID = "markdown"
	FormatYAML      FormatID = "yaml"
	FormatHTML      FormatID = "html"
	FormatXML       FormatID = "xml"
	FormatJSON      FormatID = "json"
	FormatPrompty   FormatID = "prompty"
)

// ErrUnsupportedFormat is returned when the requested format isn't
// registered. The engine fails before any rendering is attempted.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formatting holds per-format rendering knobs. It is honored only by
// formats that support customization.
type Formatting struct {
	Indentation int  `json:"indentation"`
	LineBreaks  bool `json:"line_breaks"`
	Comments    bool `json:"comments"`
}

// Options controls a single export call.
type Options struct {
	Format             FormatID    `json:"format"`
	IncludeMetadata    bool        `json:"include_metadata"`
	IncludeVersionInfo bool        `json:"include_version_info"`
	Formatting         *Formatting `json:"formatting,omitempty"`
}

// Result is the output of an export: rendered content plus everything the
// caller needs to hand the file to a browser.
type Result struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Size     int    `json:"size"`
}

// Renderer serializes a prompt into one target format.
type Renderer interface {
	Extension() string
	MIMEType() string
	SupportsCustomization() bool
	Render(doc *prompt.Prompt, opts Options) (string, error)
}

// Engine holds the format registry.
type Engine struct {
	renderers map[FormatID]Renderer
}

// NewEngine creates an engine with all built-in formats registered.
func NewEngine() *Engine {
	e := &Engine{renderers: make(map[FormatID]Renderer)}
	e.Register(FormatPlainText, plainTextRenderer{})
	e.Register(FormatMarkdown, markdownRenderer{})
	e.Register(FormatYAML, yamlRenderer{})
	e.Register(FormatHTML, htmlRenderer{})
	e.Register(FormatXML, xmlRenderer{})
	e.Register(FormatJSON, jsonRenderer{})
	e.Register(FormatPrompty, promptyRenderer{})
	return e
}

// Register adds or replaces a format renderer.
func (e *Engine) Register(id FormatID, r Renderer) {
	e.renderers[id] = r
}

// Formats returns the registered format ids, unordered.
func (e *Engine) Formats() []FormatID {
	ids := make([]FormatID, 0, len(e.renderers))
	for id := range e.renderers {
		ids = append(ids, id)
	}
	return ids
}

// Export renders the document and derives the download filename, MIME type
// and UTF-8 byte size.
func (e *Engine) Export(doc *prompt.Prompt, opts Options) (Result, error) {
	r, ok := e.renderers[opts.Format]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	content, err := r.Render(doc, opts)
	if err != nil {
		return Result{}, fmt.Errorf("rendering %s: %w", opts.Format, err)
	}

	return Result{
		Content:  content,
		Filename: Filename(doc.Title, doc.Version, r.Extension()),
		MIMEType: r.MIMEType(),
		Size:     len(content), // len of a Go string is its UTF-8 byte count
	}, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives the deterministic download name: slugged title plus the
// three-part version and the format extension.
func Filename(title string, v prompt.VersionNumber, ext string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "untitled"
	}
	return fmt.Sprintf("%s-v%d-%d-%d.%s", slug, v.Major, v.Minor, v.Batch, ext)
}

// effectiveFormatting resolves the formatting options with defaults applied.
func effectiveFormatting(opts Options) Formatting {
	f := Formatting{Indentation: 2, LineBreaks: true, Comments: false}
	if opts.Formatting != nil {
		if opts.Formatting.Indentation > 0 {
			f.Indentation = opts.Formatting.Indentation
		}
		f.LineBreaks = opts.Formatting.LineBreaks
		f.Comments = opts.Formatting.Comments
	}
	return f
}
