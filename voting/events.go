// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-rate/idgen"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/notify"
)

// maxJoinCodeAttempts bounds regeneration after a join code collision
const maxJoinCodeAttempts = 5

type newEvent struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateEvent stores a draft event under a fresh join code
func (e *Engine) CreateEvent(ctx context.Context, name string) (models.Event, error) {
	in := newEvent{Name: strings.TrimSpace(name)}
	if err := check(in); err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		ID:        idgen.GenerateID(),
		Name:      in.Name,
		Status:    models.StatusDraft,
		CreatedAt: e.now(),
	}

	for attempt := 1; ; attempt++ {
		code, err := idgen.GenerateJoinCode()
		if err != nil {
			return models.Event{}, storeErr("generate join code", err)
		}
		event.QRCode = code

		err = e.repo.CreateEvent(ctx, event)
		if err == nil {
			break
		}

		// A collision on the UNIQUE join code is retried; anything else is fatal
		taken, checkErr := e.repo.JoinCodeExists(ctx, code)
		if checkErr != nil || !taken {
			return models.Event{}, storeErr("create event", err)
		}
		if attempt == maxJoinCodeAttempts {
			return models.Event{}, storeErr("create event", errors.New("no free join code"))
		}
		slog.Warn("join code collision, retrying", "code", code, "attempt", attempt)
	}

	slog.Info("event created", "event_id", event.ID, "qr_code", event.QRCode)
	e.publish(ctx, notify.EventCreated, event.ID, map[string]any{"name": event.Name, "qr_code": event.QRCode})

	return event, nil
}

// JoinByCode finds an event by join code. A non-empty voterID is registered
// as a participant; registration failure never fails the lookup.
func (e *Engine) JoinByCode(ctx context.Context, code, voterID string) (models.Event, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Event{}, fmt.Errorf("%w: code is required", ErrValidation)
	}

	event, err := e.repo.GetEventByJoinCode(ctx, code)
	if err != nil {
		return models.Event{}, lookupErr("event", err)
	}

	e.registerQuietly(ctx, event.ID, voterID)

	return event, nil
}

type newImage struct {
	EventID  string `json:"eventId" validate:"required"`
	Filename string `json:"filename" validate:"required,max=255"`
	URL      string `json:"url" validate:"required"`
}

// AddImage appends an image to an event's voting sequence. Upload time
// fixes its position.
func (e *Engine) AddImage(ctx context.Context, eventID, filename, url string) (models.Image, error) {
	in := newImage{EventID: strings.TrimSpace(eventID), Filename: strings.TrimSpace(filename), URL: url}
	if err := check(in); err != nil {
		return models.Image{}, err
	}

	if _, err := e.repo.GetEvent(ctx, in.EventID); err != nil {
		return models.Image{}, lookupErr("event", err)
	}

	img := models.Image{
		ID:         idgen.GenerateID(),
		EventID:    in.EventID,
		URL:        in.URL,
		Filename:   in.Filename,
		UploadedAt: e.now(),
	}
	if err := e.repo.InsertImage(ctx, img); err != nil {
		return models.Image{}, storeErr("insert image", err)
	}

	slog.Info("image added", "event_id", img.EventID, "image_id", img.ID, "filename", img.Filename)
	e.publish(ctx, notify.ImageAdded, img.EventID, map[string]any{"image_id": img.ID, "filename": img.Filename})

	return img, nil
}
