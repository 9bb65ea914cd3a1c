// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Identity holds the verified claims resolved from a credential token.
// The zero value is the anonymous identity: a request that presented no
// credential. Anonymous is a valid state, not an error.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// IsAnonymous reports whether the identity carries no verified user id.
func (id Identity) IsAnonymous() bool {
	return id.UID == ""
}

// Comment is a single entry in an article's comment thread.
// Comments are append-only and immutable once posted.
type Comment struct {
	PostedBy string `json:"postedBy"`
	Text     string `json:"text"`
}

// Article is the engagement document for a single article, keyed by its
// human-readable name. CanUpvote is derived per request on reads and is
// never persisted.
type Article struct {
	Name      string    `json:"name"`
	Upvotes   int       `json:"upvotes"`
	UpvoteIDs []string  `json:"upvoteIds"`
	Comments  []Comment `json:"comments"`
	CanUpvote bool      `json:"canUpvote,omitempty"`
}

// HasUpvoted reports whether uid is already in the article's upvoter set.
func (a *Article) HasUpvoted(uid string) bool {
	for _, id := range a.UpvoteIDs {
		if id == uid {
			return true
		}
	}
	return false
}

// Request types

type AddCommentRequest struct {
	PostedBy string `json:"postedBy"`
	Text     string `json:"text"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
