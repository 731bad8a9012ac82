// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/quickly-rate/models"
)

// InsertImage stores an uploaded image
func (s *Store) InsertImage(ctx context.Context, img models.Image) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO images (id, event_id, url, filename, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
	`, img.ID, img.EventID, img.URL, img.Filename, img.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// ListImages returns an event's images in voting order (upload time).
// The id tie-break keeps the order stable for equal timestamps.
func (s *Store) ListImages(ctx context.Context, eventID string) ([]models.Image, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_id, url, filename, uploaded_at
		FROM images
		WHERE event_id = $1
		ORDER BY uploaded_at ASC, id ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}
	defer rows.Close()

	images := []models.Image{}
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.EventID, &img.URL, &img.Filename, &img.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate images: %w", err)
	}
	return images, nil
}

// GetImage loads a single image by id
func (s *Store) GetImage(ctx context.Context, id string) (models.Image, error) {
	var img models.Image
	err := s.db.QueryRowContext(ctx, `
		SELECT id, event_id, url, filename, uploaded_at
		FROM images
		WHERE id = $1
	`, id).Scan(&img.ID, &img.EventID, &img.URL, &img.Filename, &img.UploadedAt)
	if err != nil {
		return models.Image{}, notFound(err, "image")
	}
	return img, nil
}

// CountImages returns how many images an event has
func (s *Store) CountImages(ctx context.Context, eventID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM images WHERE event_id = $1`, eventID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return n, nil
}
