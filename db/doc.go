// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and article seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, "postgres"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The dialect argument ("postgres" or "sqlite") only changes the
comment id column type.

# Tables

  - article: name (key) and upvote count
  - article_upvote: upvoter set, PK (article_name, uid)
  - article_comment: append-only comment thread, ordered by id

# Relationships

	article 1──* article_upvote
	article 1──* article_comment

All foreign keys use ON DELETE CASCADE.

# Seeding

There is no article creation API; SeedArticles inserts the default
article set idempotently on startup:

	if err := db.SeedArticles(conn); err != nil {
		log.Fatal(err)
	}
*/
package db
