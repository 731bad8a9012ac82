// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-rate/idgen"
	"github.com/danielhkuo/quickly-rate/models"
)

// RegisterParticipant records voterID as a participant of eventID if it is
// not one already, and returns the event's participant count read after
// the write.
//
// Idempotence comes from checking before inserting. If the insert fails
// (typically a concurrent registration of the same voter hitting the
// UNIQUE constraint) the row is looked up again and an existing row counts
// as success.
func (e *Engine) RegisterParticipant(ctx context.Context, eventID, voterID string) (int, error) {
	voterID = strings.TrimSpace(voterID)
	if eventID == "" || voterID == "" {
		return 0, fmt.Errorf("%w: event id and voter id are required", ErrValidation)
	}

	_, found, err := e.repo.FindParticipant(ctx, eventID, voterID)
	if err != nil {
		return 0, storeErr("find participant", err)
	}

	if !found {
		p := models.Participant{
			ID:       idgen.GenerateID(),
			EventID:  eventID,
			VoterID:  voterID,
			JoinedAt: e.now(),
		}
		if insertErr := e.repo.InsertParticipant(ctx, p); insertErr != nil {
			_, found, err = e.repo.FindParticipant(ctx, eventID, voterID)
			if err != nil || !found {
				return 0, storeErr("insert participant", insertErr)
			}
		} else {
			slog.Info("participant joined", "event_id", eventID, "voter_id", voterID)
		}
	}

	count, err := e.repo.CountParticipants(ctx, eventID)
	if err != nil {
		return 0, storeErr("count participants", err)
	}
	return count, nil
}

// registerQuietly is the join-on-poll step of the read paths: a failure is
// logged and swallowed so the read still answers.
func (e *Engine) registerQuietly(ctx context.Context, eventID, voterID string) {
	if strings.TrimSpace(voterID) == "" {
		return
	}
	if _, err := e.RegisterParticipant(ctx, eventID, voterID); err != nil {
		slog.Warn("failed to register participant", "event_id", eventID, "voter_id", voterID, "error", err)
	}
}
