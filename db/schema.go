// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// SeedArticleNames are the articles every deployment starts with. There
// is no article creation API; content is seeded out of band.
var SeedArticleNames = []string{
	"learn-react",
	"learn-node",
	"mongodb",
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// dialect is "postgres" or "sqlite"; the only difference is the
// auto-increment comment id column.
func CreateSchema(db *sql.DB, dialect string) error {
	idColumn := "BIGSERIAL PRIMARY KEY"
	if dialect == "sqlite" {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	_, err := db.Exec(fmt.Sprintf(schema, idColumn))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedArticles inserts the default articles, skipping any that already
// exist. Safe to call on every startup.
func SeedArticles(db *sql.DB) error {
	for _, name := range SeedArticleNames {
		_, err := db.Exec(`
			INSERT INTO article (name, upvotes) VALUES ($1, 0)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			return fmt.Errorf("failed to seed article %q: %w", name, err)
		}
	}
	return nil
}

const schema = `
-- Articles
CREATE TABLE IF NOT EXISTS article (
    name TEXT PRIMARY KEY,
    upvotes INTEGER NOT NULL DEFAULT 0 CHECK (upvotes >= 0)
);

-- Upvoter set; the primary key enforces at-most-once per user
CREATE TABLE IF NOT EXISTS article_upvote (
    article_name TEXT NOT NULL REFERENCES article(name) ON DELETE CASCADE,
    uid TEXT NOT NULL,
    PRIMARY KEY (article_name, uid)
);

-- Comment threads, append-only; id preserves append order
CREATE TABLE IF NOT EXISTS article_comment (
    id %s,
    article_name TEXT NOT NULL REFERENCES article(name) ON DELETE CASCADE,
    posted_by TEXT NOT NULL,
    body TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_article_comment_name ON article_comment(article_name);
`
