// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkuhne/full-stack-react-site/models"
)

// SQLStore implements ArticleStore on a relational database. The schema
// (see the db package) works on both PostgreSQL and SQLite; dedup is
// enforced by the article_upvote primary key, not by application-level
// check-then-act.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) FindArticle(ctx context.Context, name string) (*models.Article, error) {
	article := models.Article{
		Name:      name,
		UpvoteIDs: []string{},
		Comments:  []models.Comment{},
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT upvotes FROM article WHERE name = $1
	`, name).Scan(&article.Upvotes)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query article: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT uid FROM article_upvote WHERE article_name = $1 ORDER BY uid
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query upvoters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("failed to scan upvoter: %w", err)
		}
		article.UpvoteIDs = append(article.UpvoteIDs, uid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read upvoters: %w", err)
	}

	comments, err := s.db.QueryContext(ctx, `
		SELECT posted_by, body FROM article_comment
		WHERE article_name = $1
		ORDER BY id
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer comments.Close()

	for comments.Next() {
		var c models.Comment
		if err := comments.Scan(&c.PostedBy, &c.Text); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		article.Comments = append(article.Comments, c)
	}
	if err := comments.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return &article, nil
}

func (s *SQLStore) Upvote(ctx context.Context, name, uid string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The upvoter-set insert is the serialization point: of any number
	// of concurrent attempts by the same uid, exactly one inserts a row.
	res, err := tx.ExecContext(ctx, `
		INSERT INTO article_upvote (article_name, uid)
		SELECT $1, $2 WHERE EXISTS (SELECT 1 FROM article WHERE name = $1)
		ON CONFLICT DO NOTHING
	`, name, uid)
	if err != nil {
		return fmt.Errorf("failed to insert upvote: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read upvote result: %w", err)
	}

	// Increment only when this call won the insert.
	if inserted == 1 {
		_, err = tx.ExecContext(ctx, `
			UPDATE article SET upvotes = upvotes + 1 WHERE name = $1
		`, name)
		if err != nil {
			return fmt.Errorf("failed to increment upvotes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upvote: %w", err)
	}
	return nil
}

func (s *SQLStore) AddComment(ctx context.Context, name string, c models.Comment) error {
	// Single-statement append: no-op when the article does not exist.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO article_comment (article_name, posted_by, body)
		SELECT $1, $2, $3 WHERE EXISTS (SELECT 1 FROM article WHERE name = $1)
	`, name, c.PostedBy, c.Text)
	if err != nil {
		return fmt.Errorf("failed to append comment: %w", err)
	}
	return nil
}

func (s *SQLStore) CreateArticle(ctx context.Context, a *models.Article) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO article (name, upvotes) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`, a.Name, a.Upvotes)
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read insert result: %w", err)
	}
	if inserted == 0 {
		return ErrDuplicateArticle
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
