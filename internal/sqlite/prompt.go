package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/prompt"
	"github.com/halverson/promptforge/internal/repository"
)

// PromptRepository implements prompt.Repository for SQLite
type PromptRepository struct {
	db *DB
}

// NewPromptRepository creates a new PromptRepository
func NewPromptRepository(db *DB) *PromptRepository {
	return &PromptRepository{db: db}
}

// Create creates a new prompt
func (r *PromptRepository) Create(ctx context.Context, ownerID string, p *prompt.Prompt) error {
	content, tags, err := encodePromptJSON(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO prompts (
			id, owner_id, title, description, structure_type, content,
			category, type, language, complexity, tags,
			version_major, version_minor, version_batch,
			views, likes, uses, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		ownerID,
		p.Title,
		p.Description,
		p.StructureType,
		content,
		p.Category,
		p.Type,
		p.Language,
		p.Complexity,
		tags,
		p.Version.Major,
		p.Version.Minor,
		p.Version.Batch,
		p.Counters.Views,
		p.Counters.Likes,
		p.Counters.Uses,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create prompt: %w", err)
	}

	return nil
}

// Get retrieves a prompt by ID
func (r *PromptRepository) Get(ctx context.Context, ownerID, id string) (*prompt.Prompt, error) {
	query := `
		SELECT
			id, owner_id, title, description, structure_type, content,
			category, type, language, complexity, tags,
			version_major, version_minor, version_batch,
			views, likes, uses, created_at, updated_at
		FROM prompts
		WHERE id = ? AND owner_id = ?
	`

	var p prompt.Prompt
	var content, tags string
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.StructureType,
		&content,
		&p.Category,
		&p.Type,
		&p.Language,
		&p.Complexity,
		&tags,
		&p.Version.Major,
		&p.Version.Minor,
		&p.Version.Batch,
		&p.Counters.Views,
		&p.Counters.Likes,
		&p.Counters.Uses,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	if err := decodePromptJSON(&p, content, tags); err != nil {
		return nil, err
	}

	return &p, nil
}

// Update updates all mutable fields of a prompt
func (r *PromptRepository) Update(ctx context.Context, ownerID string, p *prompt.Prompt) error {
	content, tags, err := encodePromptJSON(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE prompts
		SET title = ?, description = ?, content = ?,
		    category = ?, type = ?, language = ?, complexity = ?, tags = ?,
		    version_major = ?, version_minor = ?, version_batch = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.Description,
		content,
		p.Category,
		p.Type,
		p.Language,
		p.Complexity,
		tags,
		p.Version.Major,
		p.Version.Minor,
		p.Version.Batch,
		p.UpdatedAt,
		p.ID,
		ownerID,
	)

	if err != nil {
		return fmt.Errorf("failed to update prompt: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete deletes a prompt and cascades to its versions
func (r *PromptRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns prompt summaries matching the given options
func (r *PromptRepository) List(ctx context.Context, ownerID string, opts prompt.ListOptions) ([]prompt.PromptSummary, error) {
	if opts.Query != "" {
		return r.searchSummaries(ctx, ownerID, opts)
	}

	query := `
		SELECT
			id, title, description, structure_type, category, complexity, tags,
			version_major, version_minor, version_batch,
			views, likes, uses, updated_at
		FROM prompts
		WHERE owner_id = ?
	`

	args := []any{ownerID}
	conditions := []string{}

	if opts.StructureType != nil {
		conditions = append(conditions, "structure_type = ?")
		args = append(args, *opts.StructureType)
	}
	if opts.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, opts.Category)
	}
	if opts.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, opts.Type)
	}
	if opts.Language != "" {
		conditions = append(conditions, "language = ?")
		args = append(args, opts.Language)
	}
	if opts.Complexity != "" {
		conditions = append(conditions, "complexity = ?")
		args = append(args, opts.Complexity)
	}
	if opts.Tag != "" {
		// Tags are a JSON array of strings; match the quoted element.
		conditions = append(conditions, "tags LIKE ?")
		args = append(args, `%"`+opts.Tag+`"%`)
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY updated_at DESC"

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
		return nil, fmt.Errorf("failed to list prompts: %w", err)
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

// IncrementCounter atomically bumps one of the engagement counters. The
// counter name is validated by the service layer before it reaches SQL.
func (r *PromptRepository) IncrementCounter(ctx context.Context, ownerID, id, counter string) error {
	switch counter {
	case "views", "likes", "uses":
	default:
		return repository.ErrInvalidInput
	}

	query := fmt.Sprintf(`UPDATE prompts SET %s = %s + 1 WHERE id = ? AND owner_id = ?`, counter, counter)
	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", counter, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func encodePromptJSON(p *prompt.Prompt) (content, tags string, err error) {
	contentBytes, err := json.Marshal(p.Content)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode content: %w", err)
	}
	tagList := p.Tags
	if tagList == nil {
		tagList = []string{}
	}
	tagBytes, err := json.Marshal(tagList)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(contentBytes), string(tagBytes), nil
}

func decodePromptJSON(p *prompt.Prompt, content, tags string) error {
	if content != "" {
		if err := json.Unmarshal([]byte(content), &p.Content); err != nil {
			return fmt.Errorf("failed to decode content: %w", err)
		}
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return fmt.Errorf("failed to decode tags: %w", err)
		}
	}
	if len(p.Tags) == 0 {
		p.Tags = nil
	}
	return nil
}
