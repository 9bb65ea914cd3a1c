// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/fkuhne/full-stack-react-site/models"
)

var (
	ErrNotFound         = errors.New("article not found")
	ErrDuplicateArticle = errors.New("duplicate article")
)

// ArticleStore is the document store contract for article engagement
// state. Upvote and AddComment are atomic per article: the store is the
// serialization point for concurrent mutations, not the caller.
type ArticleStore interface {
	// FindArticle returns the article by name, or ErrNotFound.
	FindArticle(ctx context.Context, name string) (*models.Article, error)

	// Upvote records at most one upvote per uid per article: the count
	// increment and the upvoter-set insert happen as one atomic
	// operation. Upvoting a missing article or upvoting twice is a
	// no-op, not an error.
	Upvote(ctx context.Context, name, uid string) error

	// AddComment appends a comment to the article's thread. Appending
	// to a missing article is a no-op, not an error.
	AddComment(ctx context.Context, name string, c models.Comment) error

	// CreateArticle inserts a new article document. Used for seeding;
	// there is no article creation API.
	CreateArticle(ctx context.Context, a *models.Article) error

	Close() error
}
