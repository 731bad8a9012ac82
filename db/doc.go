// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Connecting

Open picks the driver from the config (modernc.org/sqlite or lib/pq),
tunes the pool, and pings:

	conn, err := db.Open(ctx, cfg)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - events: name, lifecycle status, join code, current image pointer
  - images: uploaded content per event, ordered by uploaded_at
  - participants: one row per (event, voter)
  - votes: one row per (event, image, voter), rewritten on resubmission

# Relationships

	events 1──* images
	events 1──* participants
	events 1──* votes
	images 1──* votes

Voter ids are bare strings; there is no voter table.
*/
package db
