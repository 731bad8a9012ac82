// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-rate/models"
)

// FindParticipant looks up the row for (eventID, voterID)
func (s *Store) FindParticipant(ctx context.Context, eventID, voterID string) (models.Participant, bool, error) {
	var p models.Participant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, event_id, voter_id, joined_at
		FROM participants
		WHERE event_id = $1 AND voter_id = $2
	`, eventID, voterID).Scan(&p.ID, &p.EventID, &p.VoterID, &p.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Participant{}, false, nil
	}
	if err != nil {
		return models.Participant{}, false, fmt.Errorf("query participant: %w", err)
	}
	return p, true, nil
}

// InsertParticipant records a voter's first appearance in an event.
// A second insert for the same pair fails on the UNIQUE constraint.
func (s *Store) InsertParticipant(ctx context.Context, p models.Participant) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO participants (id, event_id, voter_id, joined_at)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.EventID, p.VoterID, p.JoinedAt)
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}

// CountParticipants returns the number of distinct voters that joined
func (s *Store) CountParticipants(ctx context.Context, eventID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants WHERE event_id = $1`, eventID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return n, nil
}
