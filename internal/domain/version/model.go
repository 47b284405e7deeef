package version

import (
	"time"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// BumpLevel selects how the three-part version number increments.
type BumpLevel string

const (
	BumpMajor BumpLevel = "major"
	BumpMinor BumpLevel = "minor"
	BumpBatch BumpLevel = "batch"
)

// Version is an immutable snapshot of a prompt at a point in time.
type Version struct {
	ID        string               `json:"id"`
	PromptID  string               `json:"prompt_id"`
	OwnerID   string               `json:"owner_id"`
	Number    prompt.VersionNumber `json:"number"`
	Snapshot  prompt.Prompt        `json:"snapshot"`
	Changelog string               `json:"changelog,omitempty"`
	CreatedBy string               `json:"created_by,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// VersionInfo is a lightweight representation for listing.
type VersionInfo struct {
	ID        string               `json:"id"`
	Number    prompt.VersionNumber `json:"number"`
	Changelog string               `json:"changelog,omitempty"`
	CreatedBy string               `json:"created_by,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// Bump computes the next version number. Major bumps reset minor and batch,
// minor bumps reset batch, batch bumps only increment batch.
func Bump(n prompt.VersionNumber, level BumpLevel) prompt.VersionNumber {
	switch level {
	case BumpMajor:
		return prompt.VersionNumber{Major: n.Major + 1, Minor: 0, Batch: 0}
	case BumpMinor:
		return prompt.VersionNumber{Major: n.Major, Minor: n.Minor + 1, Batch: 0}
	default:
		return prompt.VersionNumber{Major: n.Major, Minor: n.Minor, Batch: n.Batch + 1}
	}
}
