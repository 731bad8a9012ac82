// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistent store for events, images, participants and
votes.

Every method issues exactly one SQL statement. Nothing here opens a
transaction: callers compose reads and writes, and each write is
self-contained (a vote upsert, a pointer move, a participant insert).

Lookups by key return ErrNotFound when no row matches. Find* methods return
a found flag instead, because absence is the normal case for them.

Queries use $n placeholders, which both lib/pq and modernc.org/sqlite bind
positionally.
*/
package store
