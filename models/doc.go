// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Article: engagement document (name, upvotes, upvoter ids, comments)
  - Comment: single immutable comment (postedBy, text)
  - Identity: verified claims for a request; zero value is anonymous

# Request Types

  - AddCommentRequest: postedBy, text

# Response Types

Article documents are returned directly as JSON. The derived canUpvote
flag is set on GET responses only and omitted when false, matching the
historical wire format.

  - ErrorResponse: error, message

# Identity

An unauthenticated request resolves to the zero Identity, distinguished
via IsAnonymous:

	if middleware.IdentityFrom(r.Context()).IsAnonymous() {
		// public access
	}
*/
package models
