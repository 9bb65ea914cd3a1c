// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/fkuhne/full-stack-react-site/models"
)

func newSeededMemoryStore(t *testing.T, names ...string) *MemoryStore {
	t.Helper()
	st := NewMemoryStore()
	for _, name := range names {
		if err := st.CreateArticle(context.Background(), &models.Article{Name: name}); err != nil {
			t.Fatalf("Failed to seed %q: %v", name, err)
		}
	}
	return st
}

func TestMemoryStoreFindArticle(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")
	ctx := context.Background()

	a, err := st.FindArticle(ctx, "learn-react")
	if err != nil {
		t.Fatalf("FindArticle failed: %v", err)
	}
	if a.Name != "learn-react" || a.Upvotes != 0 {
		t.Errorf("Unexpected article: %+v", a)
	}
	if a.UpvoteIDs == nil || a.Comments == nil {
		t.Error("Expected empty, non-nil slices for a fresh article")
	}

	_, err = st.FindArticle(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreFindArticleReturnsCopy(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")
	ctx := context.Background()

	a, _ := st.FindArticle(ctx, "learn-react")
	a.Upvotes = 99
	a.UpvoteIDs = append(a.UpvoteIDs, "intruder")
	a.CanUpvote = true

	fresh, _ := st.FindArticle(ctx, "learn-react")
	if fresh.Upvotes != 0 || len(fresh.UpvoteIDs) != 0 {
		t.Error("Mutating a returned document must not affect the store")
	}
	if fresh.CanUpvote {
		t.Error("CanUpvote must never be persisted")
	}
}

func TestMemoryStoreUpvoteOncePerUser(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")
	ctx := context.Background()

	if err := st.Upvote(ctx, "learn-react", "user-1"); err != nil {
		t.Fatalf("Upvote failed: %v", err)
	}
	// Second attempt is a no-op, not an error
	if err := st.Upvote(ctx, "learn-react", "user-1"); err != nil {
		t.Fatalf("Repeat upvote failed: %v", err)
	}

	a, _ := st.FindArticle(ctx, "learn-react")
	if a.Upvotes != 1 {
		t.Errorf("Expected 1 upvote after repeat attempts, got %d", a.Upvotes)
	}
	if !a.HasUpvoted("user-1") {
		t.Error("Expected user-1 in upvoter set")
	}
}

func TestMemoryStoreUpvoteTwoUsers(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")
	ctx := context.Background()

	st.Upvote(ctx, "learn-react", "user-1")
	st.Upvote(ctx, "learn-react", "user-2")

	a, _ := st.FindArticle(ctx, "learn-react")
	if a.Upvotes != 2 {
		t.Errorf("Expected 2 upvotes from distinct users, got %d", a.Upvotes)
	}
}

func TestMemoryStoreUpvoteMissingArticle(t *testing.T) {
	st := NewMemoryStore()

	if err := st.Upvote(context.Background(), "missing", "user-1"); err != nil {
		t.Errorf("Upvote on a missing article must be a silent no-op, got %v", err)
	}
}

func TestMemoryStoreConcurrentUpvotesSameUser(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := st.Upvote(ctx, "learn-react", "user-1"); err != nil {
				t.Errorf("Upvote failed: %v", err)
			}
		}()
	}
	wg.Wait()

	a, _ := st.FindArticle(ctx, "learn-react")
	if a.Upvotes != 1 {
		t.Errorf("Expected exactly 1 upvote after 50 concurrent attempts by one user, got %d", a.Upvotes)
	}
	if len(a.UpvoteIDs) != 1 {
		t.Errorf("Expected 1 entry in upvoter set, got %d", len(a.UpvoteIDs))
	}
}

func TestMemoryStoreConcurrentUpvotesDistinctUsers(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")
	ctx := context.Background()

	numUsers := 20
	var wg sync.WaitGroup
	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			st.Upvote(ctx, "learn-react", fmt.Sprintf("user-%d", n))
		}(i)
	}
	wg.Wait()

	a, _ := st.FindArticle(ctx, "learn-react")
	if a.Upvotes != numUsers {
		t.Errorf("Expected %d upvotes from distinct users, got %d", numUsers, a.Upvotes)
	}
}

func TestMemoryStoreAddCommentPreservesOrder(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c := models.Comment{PostedBy: "a@x.com", Text: fmt.Sprintf("comment %d", i)}
		if err := st.AddComment(ctx, "learn-react", c); err != nil {
			t.Fatalf("AddComment failed: %v", err)
		}
	}

	a, _ := st.FindArticle(ctx, "learn-react")
	if len(a.Comments) != 5 {
		t.Fatalf("Expected 5 comments, got %d", len(a.Comments))
	}
	for i, c := range a.Comments {
		expected := fmt.Sprintf("comment %d", i)
		if c.Text != expected {
			t.Errorf("Comment %d: expected '%s', got '%s'", i, expected, c.Text)
		}
	}
}

func TestMemoryStoreAddCommentMissingArticle(t *testing.T) {
	st := NewMemoryStore()

	c := models.Comment{PostedBy: "a@x.com", Text: "hi"}
	if err := st.AddComment(context.Background(), "missing", c); err != nil {
		t.Errorf("AddComment on a missing article must be a silent no-op, got %v", err)
	}
}

func TestMemoryStoreCreateArticleDuplicate(t *testing.T) {
	st := newSeededMemoryStore(t, "learn-react")

	err := st.CreateArticle(context.Background(), &models.Article{Name: "learn-react"})
	if !errors.Is(err, ErrDuplicateArticle) {
		t.Errorf("Expected ErrDuplicateArticle, got %v", err)
	}
}
