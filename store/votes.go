// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-rate/models"
)

// FindVote looks up the single vote row for (eventID, imageID, voterID)
func (s *Store) FindVote(ctx context.Context, eventID, imageID, voterID string) (models.Vote, bool, error) {
	var v models.Vote
	err := s.db.QueryRowContext(ctx, `
		SELECT id, event_id, image_id, voter_id, stars, created_at
		FROM votes
		WHERE event_id = $1 AND image_id = $2 AND voter_id = $3
	`, eventID, imageID, voterID).Scan(&v.ID, &v.EventID, &v.ImageID, &v.VoterID, &v.Stars, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, false, nil
	}
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("query vote: %w", err)
	}
	return v, true, nil
}

// InsertVote stores a first rating
func (s *Store) InsertVote(ctx context.Context, v models.Vote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, event_id, image_id, voter_id, stars, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, v.ID, v.EventID, v.ImageID, v.VoterID, v.Stars, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// UpdateVote rewrites the rating and timestamp of an existing vote
func (s *Store) UpdateVote(ctx context.Context, id string, stars int, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE votes SET stars = $1, created_at = $2 WHERE id = $3
	`, stars, at, id)
	if err != nil {
		return fmt.Errorf("update vote: %w", err)
	}
	return requireRow(res)
}

// VoteTotalsByImage returns vote count and star sum for every image of an
// event that has at least one vote
func (s *Store) VoteTotalsByImage(ctx context.Context, eventID string) (map[string]VoteTotals, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT image_id, COUNT(*), COALESCE(SUM(stars), 0)
		FROM votes
		WHERE event_id = $1
		GROUP BY image_id
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query vote totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]VoteTotals)
	for rows.Next() {
		var imageID string
		var t VoteTotals
		if err := rows.Scan(&imageID, &t.VoteCount, &t.StarSum); err != nil {
			return nil, fmt.Errorf("scan vote totals: %w", err)
		}
		totals[imageID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vote totals: %w", err)
	}
	return totals, nil
}

// ImageVoteTotals returns vote count and star sum for one image
func (s *Store) ImageVoteTotals(ctx context.Context, imageID string) (VoteTotals, error) {
	var t VoteTotals
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(stars), 0) FROM votes WHERE image_id = $1
	`, imageID).Scan(&t.VoteCount, &t.StarSum)
	if err != nil {
		return VoteTotals{}, fmt.Errorf("query image totals: %w", err)
	}
	return t, nil
}

// CountVotersOnImage returns how many distinct voters rated an image
func (s *Store) CountVotersOnImage(ctx context.Context, eventID, imageID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT voter_id) FROM votes WHERE event_id = $1 AND image_id = $2
	`, eventID, imageID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count voters: %w", err)
	}
	return n, nil
}

// ListImageVotes returns an image's votes, most recent first
func (s *Store) ListImageVotes(ctx context.Context, imageID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_id, image_id, voter_id, stars, created_at
		FROM votes
		WHERE image_id = $1
		ORDER BY created_at DESC
	`, imageID)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.EventID, &v.ImageID, &v.VoterID, &v.Stars, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}
	return votes, nil
}
