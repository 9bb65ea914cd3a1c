// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fkuhne/full-stack-react-site/auth"
	"github.com/fkuhne/full-stack-react-site/cliparse"
	"github.com/fkuhne/full-stack-react-site/models"
	"github.com/fkuhne/full-stack-react-site/store"
)

// TestSalt signs tokens in tests; any value works as long as minting
// and verifying agree.
const TestSalt = "test-token-salt"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseType: "memory",
		TokenSalt:    TestSalt,
	}
}

// NewVerifier returns the verifier used across the test suite.
func NewVerifier() *auth.HMACVerifier {
	return auth.NewHMACVerifier(TestSalt)
}

// MintToken creates a valid credential token for the given claims.
func MintToken(uid, email string) string {
	return NewVerifier().MintToken(uid, email)
}

// SeedStore creates a memory store pre-loaded with the given articles
func SeedStore(t *testing.T, articles ...models.Article) *store.MemoryStore {
	t.Helper()

	st := store.NewMemoryStore()
	for i := range articles {
		if err := st.CreateArticle(context.Background(), &articles[i]); err != nil {
			t.Fatalf("Failed to seed article %q: %v", articles[i].Name, err)
		}
	}
	return st
}

// CountingStore wraps an ArticleStore and counts every call. Used to
// assert that rejected requests never reach the store.
type CountingStore struct {
	store.ArticleStore

	Finds    atomic.Int32
	Upvotes  atomic.Int32
	Comments atomic.Int32
}

func NewCountingStore(inner store.ArticleStore) *CountingStore {
	return &CountingStore{ArticleStore: inner}
}

func (s *CountingStore) FindArticle(ctx context.Context, name string) (*models.Article, error) {
	s.Finds.Add(1)
	return s.ArticleStore.FindArticle(ctx, name)
}

func (s *CountingStore) Upvote(ctx context.Context, name, uid string) error {
	s.Upvotes.Add(1)
	return s.ArticleStore.Upvote(ctx, name, uid)
}

func (s *CountingStore) AddComment(ctx context.Context, name string, c models.Comment) error {
	s.Comments.Add(1)
	return s.ArticleStore.AddComment(ctx, name, c)
}

// Calls returns the total number of store operations observed.
func (s *CountingStore) Calls() int {
	return int(s.Finds.Load() + s.Upvotes.Load() + s.Comments.Load())
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
