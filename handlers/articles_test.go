// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fkuhne/full-stack-react-site/middleware"
	"github.com/fkuhne/full-stack-react-site/models"
	"github.com/fkuhne/full-stack-react-site/testutil"
)

func articleRequest(method, path, name string, body interface{}, id models.Identity) *http.Request {
	req := testutil.MakeRequest(method, path, body, nil)
	req.SetPathValue("name", name)
	return req.WithContext(middleware.ContextWithIdentity(req.Context(), id))
}

func TestGetArticleCanUpvote(t *testing.T) {
	testCases := []struct {
		name      string
		identity  models.Identity
		canUpvote bool
	}{
		{"anonymous cannot upvote", models.Identity{}, false},
		{"fresh user can upvote", models.Identity{UID: "user-2", Email: "u2@example.com"}, true},
		{"prior upvoter cannot upvote again", models.Identity{UID: "user-1", Email: "u1@example.com"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := testutil.SeedStore(t, models.Article{
				Name:      "learn-react",
				Upvotes:   1,
				UpvoteIDs: []string{"user-1"},
			})
			handler := NewArticleHandler(st)

			req := articleRequest("GET", "/api/articles/learn-react", "learn-react", nil, tc.identity)
			w := httptest.NewRecorder()
			handler.Get(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var article models.Article
			testutil.AssertJSON(t, w, &article)

			if article.CanUpvote != tc.canUpvote {
				t.Errorf("Expected canUpvote=%v, got %v", tc.canUpvote, article.CanUpvote)
			}
			if article.Upvotes != 1 {
				t.Errorf("Expected 1 upvote, got %d", article.Upvotes)
			}
		})
	}
}

func TestGetArticleMissing(t *testing.T) {
	handler := NewArticleHandler(testutil.SeedStore(t))

	req := articleRequest("GET", "/api/articles/missing", "missing", nil, models.Identity{})
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpvoteArticle(t *testing.T) {
	st := testutil.SeedStore(t, models.Article{Name: "learn-react"})
	handler := NewArticleHandler(st)
	id := models.Identity{UID: "user-1", Email: "u1@example.com"}

	req := articleRequest("PUT", "/api/articles/learn-react/upvote", "learn-react", nil, id)
	w := httptest.NewRecorder()
	handler.Upvote(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var article models.Article
	testutil.AssertJSON(t, w, &article)
	if article.Upvotes != 1 {
		t.Errorf("Expected 1 upvote, got %d", article.Upvotes)
	}
	if !article.HasUpvoted("user-1") {
		t.Error("Expected user-1 in upvoter set")
	}
}

func TestUpvoteArticleIdempotent(t *testing.T) {
	st := testutil.SeedStore(t, models.Article{Name: "learn-react"})
	handler := NewArticleHandler(st)
	id := models.Identity{UID: "user-1", Email: "u1@example.com"}

	for i := 0; i < 2; i++ {
		req := articleRequest("PUT", "/api/articles/learn-react/upvote", "learn-react", nil, id)
		w := httptest.NewRecorder()
		handler.Upvote(w, req)

		// The repeat call is a no-op mutation but still answers 200
		// with the current state
		testutil.AssertStatus(t, w, http.StatusOK)

		var article models.Article
		testutil.AssertJSON(t, w, &article)
		if article.Upvotes != 1 {
			t.Errorf("Call %d: expected 1 upvote, got %d", i+1, article.Upvotes)
		}
	}
}

func TestUpvoteMissingArticleSilentNoop(t *testing.T) {
	// Pins the route's historical contract: upvoting a missing article
	// is not an error and answers 200 with a JSON null body.
	handler := NewArticleHandler(testutil.SeedStore(t))
	id := models.Identity{UID: "user-1", Email: "u1@example.com"}

	req := articleRequest("PUT", "/api/articles/missing/upvote", "missing", nil, id)
	w := httptest.NewRecorder()
	handler.Upvote(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Body.String(); got != "null\n" {
		t.Errorf("Expected JSON null body, got %q", got)
	}
}

func TestAddComment(t *testing.T) {
	st := testutil.SeedStore(t, models.Article{
		Name:     "foo",
		Comments: []models.Comment{{PostedBy: "first@x.com", Text: "first"}},
	})
	handler := NewArticleHandler(st)
	id := models.Identity{UID: "user-1", Email: "a@x.com"}

	body := models.AddCommentRequest{PostedBy: "spoofed@x.com", Text: "hi"}
	req := articleRequest("POST", "/api/articles/foo/comments", "foo", body, id)
	w := httptest.NewRecorder()
	handler.AddComment(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var article models.Article
	testutil.AssertJSON(t, w, &article)

	if len(article.Comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(article.Comments))
	}
	if article.Comments[0].Text != "first" {
		t.Error("Prior comment must be unchanged and first")
	}

	appended := article.Comments[1]
	if appended.Text != "hi" {
		t.Errorf("Expected appended text 'hi', got '%s'", appended.Text)
	}
	// The comment is attributed to the verified identity, not the body
	if appended.PostedBy != "a@x.com" {
		t.Errorf("Expected postedBy from identity email, got '%s'", appended.PostedBy)
	}
}

func TestAddCommentMissingArticlePlainText(t *testing.T) {
	// Pins the route's historical contract: a missing article answers
	// 200 with a plain-text message, not a structured error.
	handler := NewArticleHandler(testutil.SeedStore(t))
	id := models.Identity{UID: "user-1", Email: "a@x.com"}

	body := models.AddCommentRequest{PostedBy: "a@x.com", Text: "hi"}
	req := articleRequest("POST", "/api/articles/missing/comments", "missing", body, id)
	w := httptest.NewRecorder()
	handler.AddComment(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Body.String(); got != "That article doesn't exist." {
		t.Errorf("Expected plain-text message, got %q", got)
	}
	if ct := w.Header().Get("Content-Type"); ct == "application/json" {
		t.Error("Missing-article comment response must not be JSON")
	}
}

func TestAddCommentInvalidJSON(t *testing.T) {
	handler := NewArticleHandler(testutil.SeedStore(t, models.Article{Name: "foo"}))
	id := models.Identity{UID: "user-1", Email: "a@x.com"}

	req := testutil.MakeRequest("POST", "/api/articles/foo/comments", nil, nil)
	req.Body = http.NoBody
	req.SetPathValue("name", "foo")
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), id))

	w := httptest.NewRecorder()
	handler.AddComment(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

// brokenStore fails every operation, standing in for an unavailable
// document store.
type brokenStore struct{}

var errStoreDown = errors.New("store unavailable")

func (brokenStore) FindArticle(context.Context, string) (*models.Article, error) {
	return nil, errStoreDown
}

func (brokenStore) Upvote(context.Context, string, string) error { return errStoreDown }

func (brokenStore) AddComment(context.Context, string, models.Comment) error {
	return errStoreDown
}

func (brokenStore) CreateArticle(context.Context, *models.Article) error { return errStoreDown }

func (brokenStore) Close() error { return nil }

func TestStoreUnavailableSurfacesAs500(t *testing.T) {
	handler := NewArticleHandler(brokenStore{})
	id := models.Identity{UID: "user-1", Email: "a@x.com"}

	testCases := []struct {
		name string
		call func(w *httptest.ResponseRecorder)
	}{
		{"get", func(w *httptest.ResponseRecorder) {
			handler.Get(w, articleRequest("GET", "/api/articles/foo", "foo", nil, models.Identity{}))
		}},
		{"upvote", func(w *httptest.ResponseRecorder) {
			handler.Upvote(w, articleRequest("PUT", "/api/articles/foo/upvote", "foo", nil, id))
		}},
		{"comment", func(w *httptest.ResponseRecorder) {
			body := models.AddCommentRequest{Text: "hi"}
			handler.AddComment(w, articleRequest("POST", "/api/articles/foo/comments", "foo", body, id))
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.call(w)
			testutil.AssertStatus(t, w, http.StatusInternalServerError)
		})
	}
}
