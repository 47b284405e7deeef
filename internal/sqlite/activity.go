package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/halverson/promptforge/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an activity entry
func (r *ActivityRepository) Log(ctx context.Context, ownerID string, entry *activity.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (owner_id, prompt_id, version_id, activity_type, summary, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		ownerID,
		entry.PromptID,
		entry.VersionID,
		entry.ActivityType,
		entry.Summary,
		entry.Details,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}

	return nil
}

// List returns activity entries, newest first
func (r *ActivityRepository) List(ctx context.Context, ownerID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	query := `
		SELECT id, owner_id, prompt_id, version_id, activity_type, summary, details, created_at
		FROM activity_log
		WHERE owner_id = ?
	`

	args := []any{ownerID}
	conditions := []string{}

	if opts.PromptID != nil {
		conditions = append(conditions, "prompt_id = ?")
		args = append(args, *opts.PromptID)
	}
	if opts.ActivityType != nil {
		conditions = append(conditions, "activity_type = ?")
		args = append(args, *opts.ActivityType)
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

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
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.ActivityEntry
	for rows.Next() {
		var entry activity.ActivityEntry
		var details *string
		if err := rows.Scan(
			&entry.ID,
			&entry.OwnerID,
			&entry.PromptID,
			&entry.VersionID,
			&entry.ActivityType,
			&entry.Summary,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		if details != nil {
			entry.Details = *details
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
