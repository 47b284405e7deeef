package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Prompts table. Content and tags are stored as JSON; the structure type
-- decides which content shape the JSON carries.
CREATE TABLE IF NOT EXISTS prompts (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    structure_type TEXT NOT NULL CHECK(structure_type IN ('standard', 'structured', 'modulized', 'advanced')),
    content TEXT NOT NULL DEFAULT '{}',
    category TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT '',
    language TEXT NOT NULL DEFAULT '',
    complexity TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',
    version_major INTEGER NOT NULL DEFAULT 1,
    version_minor INTEGER NOT NULL DEFAULT 0,
    version_batch INTEGER NOT NULL DEFAULT 0,
    views INTEGER NOT NULL DEFAULT 0,
    likes INTEGER NOT NULL DEFAULT 0,
    uses INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_owner_prompts ON prompts(owner_id);
CREATE INDEX IF NOT EXISTS idx_prompt_category ON prompts(category);
CREATE INDEX IF NOT EXISTS idx_prompt_structure ON prompts(structure_type);

-- Immutable version snapshots
CREATE TABLE IF NOT EXISTS prompt_versions (
    id TEXT PRIMARY KEY,
    prompt_id TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    major INTEGER NOT NULL,
    minor INTEGER NOT NULL,
    batch INTEGER NOT NULL,
    snapshot TEXT NOT NULL,
    changelog TEXT NOT NULL DEFAULT '',
    created_by TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_owner_versions ON prompt_versions(owner_id);
CREATE INDEX IF NOT EXISTS idx_prompt_versions ON prompt_versions(prompt_id);

-- Activity log
CREATE TABLE IF NOT EXISTS activity_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id TEXT NOT NULL,
    prompt_id TEXT,
    version_id TEXT,
    activity_type TEXT NOT NULL,
    summary TEXT NOT NULL,
    details TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_owner_activity ON activity_log(owner_id);
CREATE INDEX IF NOT EXISTS idx_prompt_activity ON activity_log(prompt_id);

-- Full-text search (SQLite FTS5). The content column holds JSON; FTS5's
-- tokenizer skips the punctuation, so words inside segment and module
-- bodies are still matchable.
CREATE VIRTUAL TABLE IF NOT EXISTS prompts_fts USING fts5(
    title,
    description,
    content,
    content='prompts',
    content_rowid='rowid'
);

-- Triggers to keep FTS index synchronized
CREATE TRIGGER IF NOT EXISTS prompts_ai AFTER INSERT ON prompts BEGIN
    INSERT INTO prompts_fts(rowid, title, description, content)
    VALUES (new.rowid, new.title, new.description, new.content);
END;

CREATE TRIGGER IF NOT EXISTS prompts_ad AFTER DELETE ON prompts BEGIN
    INSERT INTO prompts_fts(prompts_fts, rowid, title, description, content)
    VALUES('delete', old.rowid, old.title, old.description, old.content);
END;

CREATE TRIGGER IF NOT EXISTS prompts_au AFTER UPDATE ON prompts BEGIN
    INSERT INTO prompts_fts(prompts_fts, rowid, title, description, content)
    VALUES('delete', old.rowid, old.title, old.description, old.content);
    INSERT INTO prompts_fts(rowid, title, description, content)
    VALUES (new.rowid, new.title, new.description, new.content);
END;
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
