// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the article document store and its implementations.

# Contract

ArticleStore exposes atomic per-article operations:

	FindArticle(ctx, name)      // read, ErrNotFound when absent
	Upvote(ctx, name, uid)      // conditional increment + set insert
	AddComment(ctx, name, c)    // append
	CreateArticle(ctx, a)       // seeding only

The store is the serialization point for the at-most-once upvote
invariant: concurrent upvotes by the same user on the same article
result in exactly one increment, even if every attempt passed an
earlier read check. Handlers never do read-modify-write on the count.

Upvoting or commenting on a missing article is a silent no-op by
contract; the per-route response policy for that case lives in the
handlers.

# Implementations

SQLStore runs on PostgreSQL (github.com/lib/pq) or SQLite
(modernc.org/sqlite) over database/sql. Dedup comes from the
article_upvote primary key via INSERT .. ON CONFLICT DO NOTHING, with
the count increment gated on the insert's rows-affected.

MemoryStore is a mutex-guarded map with identical semantics, used by
tests and the -t memory dev mode.
*/
package store
