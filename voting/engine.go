// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/notify"
	"github.com/danielhkuo/quickly-rate/store"
)

// Repository is the store surface the engine reads and writes.
// *store.Store implements it.
type Repository interface {
	CreateEvent(ctx context.Context, e models.Event) error
	JoinCodeExists(ctx context.Context, code string) (bool, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	GetEventByJoinCode(ctx context.Context, code string) (models.Event, error)
	UpdateEventStatus(ctx context.Context, id, status string) error
	SetCurrentImageIndex(ctx context.Context, id string, index int) error

	InsertImage(ctx context.Context, img models.Image) error
	ListImages(ctx context.Context, eventID string) ([]models.Image, error)
	GetImage(ctx context.Context, id string) (models.Image, error)
	CountImages(ctx context.Context, eventID string) (int, error)

	FindParticipant(ctx context.Context, eventID, voterID string) (models.Participant, bool, error)
	InsertParticipant(ctx context.Context, p models.Participant) error
	CountParticipants(ctx context.Context, eventID string) (int, error)

	FindVote(ctx context.Context, eventID, imageID, voterID string) (models.Vote, bool, error)
	InsertVote(ctx context.Context, v models.Vote) error
	UpdateVote(ctx context.Context, id string, stars int, at time.Time) error
	VoteTotalsByImage(ctx context.Context, eventID string) (map[string]store.VoteTotals, error)
	ImageVoteTotals(ctx context.Context, imageID string) (store.VoteTotals, error)
	CountVotersOnImage(ctx context.Context, eventID, imageID string) (int, error)
	ListImageVotes(ctx context.Context, imageID string) ([]models.Vote, error)
}

// Engine holds no per-event state; the store is the only source of truth.
type Engine struct {
	repo      Repository
	publisher notify.Publisher
	now       func() time.Time
}

func NewEngine(repo Repository, publisher notify.Publisher) *Engine {
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &Engine{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// publish never fails the caller; the state change is already stored
func (e *Engine) publish(ctx context.Context, typ, eventID string, data map[string]any) {
	n := notify.Notification{
		Type:       typ,
		EventID:    eventID,
		OccurredAt: e.now(),
		Data:       data,
	}
	if err := e.publisher.Publish(ctx, n); err != nil {
		slog.Warn("failed to publish notification", "type", typ, "event_id", eventID, "error", err)
	}
}
