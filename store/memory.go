// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/fkuhne/full-stack-react-site/models"
)

// MemoryStore implements ArticleStore with an in-process map. It backs
// the test suite and the -t memory dev mode. All operations hold the
// mutex for their full duration, which gives the same per-article
// atomicity the SQL store gets from its constraints.
type MemoryStore struct {
	mu       sync.Mutex
	articles map[string]*models.Article
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{articles: make(map[string]*models.Article)}
}

func (s *MemoryStore) FindArticle(_ context.Context, name string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[name]
	if !ok {
		return nil, ErrNotFound
	}
	return copyArticle(a), nil
}

func (s *MemoryStore) Upvote(_ context.Context, name, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[name]
	if !ok {
		return nil
	}
	if a.HasUpvoted(uid) {
		return nil
	}
	a.UpvoteIDs = append(a.UpvoteIDs, uid)
	a.Upvotes++
	return nil
}

func (s *MemoryStore) AddComment(_ context.Context, name string, c models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[name]
	if !ok {
		return nil
	}
	a.Comments = append(a.Comments, c)
	return nil
}

func (s *MemoryStore) CreateArticle(_ context.Context, a *models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[a.Name]; ok {
		return ErrDuplicateArticle
	}
	s.articles[a.Name] = copyArticle(a)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// copyArticle detaches the stored document from the caller's value so
// neither side can mutate the other. CanUpvote is request-derived and
// never kept.
func copyArticle(a *models.Article) *models.Article {
	c := models.Article{
		Name:      a.Name,
		Upvotes:   a.Upvotes,
		UpvoteIDs: make([]string, len(a.UpvoteIDs)),
		Comments:  make([]models.Comment, len(a.Comments)),
	}
	copy(c.UpvoteIDs, a.UpvoteIDs)
	copy(c.Comments, a.Comments)
	return &c
}
