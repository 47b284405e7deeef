package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/halverson/promptforge/internal/domain/version"
	"github.com/halverson/promptforge/internal/repository"
)

// VersionRepository implements version.Repository for SQLite
type VersionRepository struct {
	db *DB
}

// NewVersionRepository creates a new VersionRepository
func NewVersionRepository(db *DB) *VersionRepository {
	return &VersionRepository{db: db}
}

// Create stores an immutable version snapshot
func (r *VersionRepository) Create(ctx context.Context, ownerID string, v *version.Version) error {
	snapshot, err := json.Marshal(v.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO prompt_versions (
			id, prompt_id, owner_id, major, minor, batch,
			snapshot, changelog, created_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		v.ID,
		v.PromptID,
		ownerID,
		v.Number.Major,
		v.Number.Minor,
		v.Number.Batch,
		string(snapshot),
		v.Changelog,
		v.CreatedBy,
		v.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create version: %w", err)
	}

	return nil
}

// Get retrieves a version by ID
func (r *VersionRepository) Get(ctx context.Context, ownerID, id string) (*version.Version, error) {
	query := `
		SELECT id, prompt_id, owner_id, major, minor, batch,
		       snapshot, changelog, created_by, created_at
		FROM prompt_versions
		WHERE id = ? AND owner_id = ?
	`

	var v version.Version
	var snapshot string
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&v.ID,
		&v.PromptID,
		&v.OwnerID,
		&v.Number.Major,
		&v.Number.Minor,
		&v.Number.Batch,
		&snapshot,
		&v.Changelog,
		&v.CreatedBy,
		&v.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	if err := json.Unmarshal([]byte(snapshot), &v.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return &v, nil
}

// List returns version infos for a prompt, newest first
func (r *VersionRepository) List(ctx context.Context, ownerID, promptID string) ([]version.VersionInfo, error) {
	query := `
		SELECT id, major, minor, batch, changelog, created_by, created_at
		FROM prompt_versions
		WHERE owner_id = ? AND prompt_id = ?
		ORDER BY major DESC, minor DESC, batch DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID, promptID)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	var infos []version.VersionInfo
	for rows.Next() {
		var info version.VersionInfo
		if err := rows.Scan(
			&info.ID,
			&info.Number.Major,
			&info.Number.Minor,
			&info.Number.Batch,
			&info.Changelog,
			&info.CreatedBy,
			&info.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan version info: %w", err)
		}
		infos = append(infos, info)
	}

	return infos, rows.Err()
}

// Delete removes a version snapshot
func (r *VersionRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM prompt_versions WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete version: %w", err)
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
