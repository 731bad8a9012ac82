// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/quickly-rate/models"
)

const eventColumns = `id, name, status, qr_code, current_image_index, created_at`

// CreateEvent inserts a new event row
func (s *Store) CreateEvent(ctx context.Context, e models.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, name, status, qr_code, current_image_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.Name, e.Status, e.QRCode, e.CurrentImageIndex, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// JoinCodeExists reports whether any event already uses code
func (s *Store) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE qr_code = $1`, code).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check join code: %w", err)
	}
	return n > 0, nil
}

// GetEvent loads an event by id
func (s *Store) GetEvent(ctx context.Context, id string) (models.Event, error) {
	var e models.Event
	err := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.Status, &e.QRCode, &e.CurrentImageIndex, &e.CreatedAt)
	if err != nil {
		return models.Event{}, notFound(err, "event")
	}
	return e, nil
}

// GetEventByJoinCode loads an event by its public join code
func (s *Store) GetEventByJoinCode(ctx context.Context, code string) (models.Event, error) {
	var e models.Event
	err := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE qr_code = $1
	`, code).Scan(&e.ID, &e.Name, &e.Status, &e.QRCode, &e.CurrentImageIndex, &e.CreatedAt)
	if err != nil {
		return models.Event{}, notFound(err, "event")
	}
	return e, nil
}

// UpdateEventStatus overwrites the lifecycle status
func (s *Store) UpdateEventStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE events SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	return requireRow(res)
}

// SetCurrentImageIndex moves the current-image pointer
func (s *Store) SetCurrentImageIndex(ctx context.Context, id string, index int) error {
	res, err := s.db.ExecContext(ctx, `UPDATE events SET current_image_index = $1 WHERE id = $2`, index, id)
	if err != nil {
		return fmt.Errorf("update current image: %w", err)
	}
	return requireRow(res)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireRow(res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
