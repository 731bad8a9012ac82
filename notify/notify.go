// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"time"
)

// Notification types
const (
	EventCreated       = "event.created"
	EventStatusChanged = "event.status_changed"
	EventAdvanced      = "event.advanced"
	EventClosed        = "event.closed"
	ImageAdded         = "image.added"
	VoteRecorded       = "vote.recorded"
)

// Notification describes a state change that already happened in the store.
type Notification struct {
	Type       string         `json:"type"`
	EventID    string         `json:"event_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// Publisher delivers notifications somewhere outside the process.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// Nop drops every notification. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Notification) error { return nil }
