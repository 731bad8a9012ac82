// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/notify"
)

// transitions lists the statuses each status may move to via SetStatus.
// closed is terminal.
var transitions = map[string][]string{
	models.StatusDraft:  {models.StatusActive, models.StatusClosed},
	models.StatusActive: {models.StatusClosed},
	models.StatusClosed: {},
}

func canTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type statusChange struct {
	Status string `json:"status" validate:"required,oneof=draft active closed"`
}

// SetStatus applies an admin status change. Setting the current status
// again is a no-op.
func (e *Engine) SetStatus(ctx context.Context, eventID, status string) error {
	in := statusChange{Status: strings.TrimSpace(status)}
	if err := check(in); err != nil {
		return err
	}

	event, err := e.repo.GetEvent(ctx, eventID)
	if err != nil {
		return lookupErr("event", err)
	}

	if !canTransition(event.Status, in.Status) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, event.Status, in.Status)
	}
	if event.Status == in.Status {
		return nil
	}

	if err := e.repo.UpdateEventStatus(ctx, event.ID, in.Status); err != nil {
		return lookupErr("event", err)
	}

	slog.Info("event status changed", "event_id", event.ID, "from", event.Status, "to", in.Status)
	e.publish(ctx, notify.EventStatusChanged, event.ID, map[string]any{"from": event.Status, "to": in.Status})

	return nil
}

// Advance moves the current-image pointer one step. Stepping past the last
// image closes the event and leaves the pointer where it was.
//
// Advance does not look at vote progress; deciding when to advance is the
// caller's policy. No lock is taken: two near-simultaneous calls each move
// the pointer, so a double click skips an image (or, when both read the
// same pointer, moves it only once).
func (e *Engine) Advance(ctx context.Context, eventID string) (models.AdvanceResponse, error) {
	event, err := e.repo.GetEvent(ctx, eventID)
	if err != nil {
		return models.AdvanceResponse{}, lookupErr("event", err)
	}

	if event.Status == models.StatusClosed {
		return models.AdvanceResponse{
			Success:    true,
			NextIndex:  event.CurrentImageIndex,
			IsComplete: true,
		}, nil
	}

	total, err := e.repo.CountImages(ctx, event.ID)
	if err != nil {
		return models.AdvanceResponse{}, storeErr("count images", err)
	}

	next := event.CurrentImageIndex + 1
	if next >= total {
		if err := e.repo.UpdateEventStatus(ctx, event.ID, models.StatusClosed); err != nil {
			return models.AdvanceResponse{}, lookupErr("event", err)
		}
		slog.Info("event closed", "event_id", event.ID, "total_images", total)
		e.publish(ctx, notify.EventClosed, event.ID, map[string]any{"total_images": total})

		return models.AdvanceResponse{Success: true, NextIndex: next, IsComplete: true}, nil
	}

	if err := e.repo.SetCurrentImageIndex(ctx, event.ID, next); err != nil {
		return models.AdvanceResponse{}, lookupErr("event", err)
	}
	slog.Info("image advanced", "event_id", event.ID, "index", next, "total_images", total)
	e.publish(ctx, notify.EventAdvanced, event.ID, map[string]any{"next_index": next, "total_images": total})

	return models.AdvanceResponse{Success: true, NextIndex: next, IsComplete: false}, nil
}
