// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by key matches no row.
var ErrNotFound = errors.New("not found")

// Store is the persistent store. Each method issues a single statement;
// callers compose them without transactions.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// VoteTotals is the raw material for an image's average rating.
type VoteTotals struct {
	VoteCount int
	StarSum   int64
}

// Average returns the mean star rating, or 0 when there are no votes.
func (t VoteTotals) Average() float64 {
	if t.VoteCount == 0 {
		return 0
	}
	return float64(t.StarSum) / float64(t.VoteCount)
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("query %s: %w", what, err)
}
