package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
)

// searchSummaries runs a full-text query against the prompts_fts index and
// returns summaries ranked by relevance. Filters from opts still apply on
// top of the match.
func (r *PromptRepository) searchSummaries(ctx context.Context, ownerID string, opts prompt.ListOptions) ([]prompt.PromptSummary, error) {
	query := `
		SELECT
			p.id, p.title, p.description, p.structure_type, p.category, p.complexity, p.tags,
			p.version_major, p.version_minor, p.version_batch,
			p.views, p.likes, p.uses, p.updated_at
		FROM prompts_fts
		JOIN prompts p ON p.rowid = prompts_fts.rowid
		WHERE p.owner_id = ? AND prompts_fts MATCH ?
	`

	args := []any{ownerID, opts.Query}
	conditions := []string{}

	if opts.StructureType != nil {
		conditions = append(conditions, "p.structure_type = ?")
		args = append(args, *opts.StructureType)
	}
	if opts.Category != "" {
		conditions = append(conditions, "p.category = ?")
		args = append(args, opts.Category)
	}
	if opts.Type != "" {
		conditions = append(conditions, "p.type = ?")
		args = append(args, opts.Type)
	}
	if opts.Language != "" {
		conditions = append(conditions, "p.language = ?")
		args = append(args, opts.Language)
	}
	if opts.Complexity != "" {
		conditions = append(conditions, "p.complexity = ?")
		args = append(args, opts.Complexity)
	}
	if opts.Tag != "" {
		// Tags are a JSON array of strings; match the quoted element.
		conditions = append(conditions, "p.tags LIKE ?")
		args = append(args, `%"`+opts.Tag+`"%`)
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rank"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search prompts: %w", err)
	}
	defer rows.Close()

	var summaries []prompt.PromptSummary
	for rows.Next() {
		var s prompt.PromptSummary
		var tags string
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Description,
			&s.StructureType,
			&s.Category,
			&s.Complexity,
			&tags,
			&s.Version.Major,
			&s.Version.Minor,
			&s.Version.Batch,
			&s.Counters.Views,
			&s.Counters.Likes,
			&s.Counters.Uses,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prompt summary: %w", err)
		}
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &s.Tags); err != nil {
				return nil, fmt.Errorf("failed to decode tags: %w", err)
			}
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
