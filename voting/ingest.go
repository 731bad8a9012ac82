// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-rate/idgen"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/notify"
)

// VoteInput is one star rating submission
type VoteInput struct {
	EventID string `json:"eventId" validate:"required"`
	ImageID string `json:"imageId" validate:"required"`
	VoterID string `json:"voterId" validate:"required"`
	Stars   int    `json:"stars" validate:"min=1,max=5"`
}

// VoteResult is the stored vote and whether it replaced an earlier rating
type VoteResult struct {
	Vote    models.Vote
	Updated bool
}

// ParseStars converts a JSON number to a star rating. Missing and
// fractional values are validation errors; range is checked by CastVote.
func ParseStars(n json.Number) (int, error) {
	if n == "" {
		return 0, fmt.Errorf("%w: stars is required", ErrValidation)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: stars must be an integer", ErrValidation)
	}
	if v < 1 || v > 5 {
		return 0, fmt.Errorf("%w: stars must be between 1 and 5", ErrValidation)
	}
	return int(v), nil
}

// CastVote upserts a voter's rating for an image: the first submission
// inserts, later ones rewrite stars and timestamp in place. There is never
// more than one row per (event, image, voter).
func (e *Engine) CastVote(ctx context.Context, in VoteInput) (VoteResult, error) {
	in.EventID = strings.TrimSpace(in.EventID)
	in.ImageID = strings.TrimSpace(in.ImageID)
	in.VoterID = strings.TrimSpace(in.VoterID)
	if err := check(in); err != nil {
		return VoteResult{}, err
	}

	img, err := e.repo.GetImage(ctx, in.ImageID)
	if err != nil {
		return VoteResult{}, lookupErr("image", err)
	}
	if img.EventID != in.EventID {
		return VoteResult{}, fmt.Errorf("%w: image %s in event %s", ErrNotFound, in.ImageID, in.EventID)
	}

	now := e.now()
	vote := models.Vote{
		EventID:   in.EventID,
		ImageID:   in.ImageID,
		VoterID:   in.VoterID,
		Stars:     in.Stars,
		CreatedAt: now,
	}

	existing, found, err := e.repo.FindVote(ctx, in.EventID, in.ImageID, in.VoterID)
	if err != nil {
		return VoteResult{}, storeErr("find vote", err)
	}

	if !found {
		vote.ID = idgen.GenerateID()
		insertErr := e.repo.InsertVote(ctx, vote)
		if insertErr == nil {
			e.voteRecorded(ctx, vote, false)
			return VoteResult{Vote: vote}, nil
		}

		// Same voter submitting concurrently: the other request inserted
		// first, so this one becomes the update.
		existing, found, err = e.repo.FindVote(ctx, in.EventID, in.ImageID, in.VoterID)
		if err != nil || !found {
			return VoteResult{}, storeErr("insert vote", insertErr)
		}
	}

	vote.ID = existing.ID
	if err := e.repo.UpdateVote(ctx, existing.ID, in.Stars, now); err != nil {
		return VoteResult{}, storeErr("update vote", err)
	}
	e.voteRecorded(ctx, vote, true)

	return VoteResult{Vote: vote, Updated: true}, nil
}

func (e *Engine) voteRecorded(ctx context.Context, v models.Vote, updated bool) {
	slog.Info("vote recorded", "event_id", v.EventID, "image_id", v.ImageID, "vote_id", v.ID, "is_update", updated)
	e.publish(ctx, notify.VoteRecorded, v.EventID, map[string]any{
		"image_id": v.ImageID,
		"vote_id":  v.ID,
		"stars":    v.Stars,
		"updated":  updated,
	})
}
