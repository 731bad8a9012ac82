// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"sort"

	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/store"
)

// progress is the per-poll view of where an event stands. Primary records
// (event, images) must load; counts that fail to load degrade to zero.
type progress struct {
	event          models.Event
	images         []models.Image
	current        *models.Image
	participants   int
	votesOnCurrent int
	allVoted       bool
}

func (e *Engine) loadProgress(ctx context.Context, event models.Event) (progress, error) {
	images, err := e.repo.ListImages(ctx, event.ID)
	if err != nil {
		return progress{}, storeErr("list images", err)
	}

	p := progress{
		event:   event,
		images:  images,
		current: currentImage(images, event.CurrentImageIndex),
	}

	p.participants, err = e.repo.CountParticipants(ctx, event.ID)
	if err != nil {
		slog.Warn("failed to count participants", "event_id", event.ID, "error", err)
		p.participants = 0
	}

	if p.current != nil {
		p.votesOnCurrent, err = e.repo.CountVotersOnImage(ctx, event.ID, p.current.ID)
		if err != nil {
			slog.Warn("failed to count votes on current image", "event_id", event.ID, "error", err)
			p.votesOnCurrent = 0
		}
	}

	p.allVoted = allVoted(p.votesOnCurrent, p.participants)
	return p, nil
}

// currentImage returns the image at the pointer, or nil when the pointer is
// outside the list
func currentImage(images []models.Image, index int) *models.Image {
	if index < 0 || index >= len(images) {
		return nil
	}
	img := images[index]
	return &img
}

// allVoted reports whether every participant has rated the current image.
// An event nobody joined is never "all voted".
func allVoted(distinctVoters, participants int) bool {
	return participants > 0 && distinctVoters >= participants
}

// Snapshot answers a participant poll. When voterID is set the voter is
// registered first, so the returned participant count includes them.
func (e *Engine) Snapshot(ctx context.Context, eventID, voterID string) (models.EventSnapshot, error) {
	event, err := e.repo.GetEvent(ctx, eventID)
	if err != nil {
		return models.EventSnapshot{}, lookupErr("event", err)
	}

	e.registerQuietly(ctx, event.ID, voterID)

	p, err := e.loadProgress(ctx, event)
	if err != nil {
		return models.EventSnapshot{}, err
	}

	totals, err := e.repo.VoteTotalsByImage(ctx, event.ID)
	if err != nil {
		slog.Warn("failed to load vote totals", "event_id", event.ID, "error", err)
		totals = nil
	}

	return models.EventSnapshot{
		Event:               event,
		Images:              p.images,
		VoteStats:           imageStats(p.images, totals),
		ParticipantCount:    p.participants,
		CurrentImageIndex:   event.CurrentImageIndex,
		CurrentImage:        p.current,
		VotesOnCurrentImage: p.votesOnCurrent,
		AllVoted:            p.allVoted,
	}, nil
}

// Presentation answers a presentation-screen poll. It never registers a
// participant.
func (e *Engine) Presentation(ctx context.Context, eventID string) (models.PresentationView, error) {
	event, err := e.repo.GetEvent(ctx, eventID)
	if err != nil {
		return models.PresentationView{}, lookupErr("event", err)
	}

	p, err := e.loadProgress(ctx, event)
	if err != nil {
		return models.PresentationView{}, err
	}

	return models.PresentationView{
		Event:               event,
		CurrentImage:        p.current,
		CurrentImageIndex:   event.CurrentImageIndex,
		TotalImages:         len(p.images),
		ParticipantCount:    p.participants,
		VotesOnCurrentImage: p.votesOnCurrent,
		AllVoted:            p.allVoted,
	}, nil
}

// imageStats lists stats for every image in voting order, zero-filled for
// images nobody rated
func imageStats(images []models.Image, totals map[string]store.VoteTotals) []models.ImageStats {
	stats := make([]models.ImageStats, 0, len(images))
	for _, img := range images {
		t := totals[img.ID]
		stats = append(stats, models.ImageStats{
			ImageID:   img.ID,
			AvgStars:  t.Average(),
			VoteCount: t.VoteCount,
		})
	}
	return stats
}

// Leaderboard ranks an event's images by average rating, then vote count
func (e *Engine) Leaderboard(ctx context.Context, eventID string) (models.LeaderboardResponse, error) {
	event, err := e.repo.GetEvent(ctx, eventID)
	if err != nil {
		return models.LeaderboardResponse{}, lookupErr("event", err)
	}

	images, err := e.repo.ListImages(ctx, event.ID)
	if err != nil {
		return models.LeaderboardResponse{}, storeErr("list images", err)
	}

	totals, err := e.repo.VoteTotalsByImage(ctx, event.ID)
	if err != nil {
		return models.LeaderboardResponse{}, storeErr("load vote totals", err)
	}

	participants, err := e.repo.CountParticipants(ctx, event.ID)
	if err != nil {
		slog.Warn("failed to count participants", "event_id", event.ID, "error", err)
		participants = 0
	}

	entries := make([]models.LeaderboardEntry, 0, len(images))
	for _, img := range images {
		t := totals[img.ID]
		entries = append(entries, models.LeaderboardEntry{
			ID:         img.ID,
			URL:        img.URL,
			Filename:   img.Filename,
			UploadedAt: img.UploadedAt,
			AvgStars:   t.Average(),
			VoteCount:  t.VoteCount,
		})
	}
	rankLeaderboard(entries)

	return models.LeaderboardResponse{
		Leaderboard:      entries,
		ParticipantCount: participants,
	}, nil
}

// rankLeaderboard sorts by average descending, then vote count descending.
// Full ties keep upload order.
func rankLeaderboard(entries []models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AvgStars != entries[j].AvgStars {
			return entries[i].AvgStars > entries[j].AvgStars
		}
		return entries[i].VoteCount > entries[j].VoteCount
	})
}

// ImageVotes returns every vote on one image with its stats
func (e *Engine) ImageVotes(ctx context.Context, imageID string) (models.ImageVotesResponse, error) {
	img, err := e.repo.GetImage(ctx, imageID)
	if err != nil {
		return models.ImageVotesResponse{}, lookupErr("image", err)
	}

	votes, err := e.repo.ListImageVotes(ctx, img.ID)
	if err != nil {
		return models.ImageVotesResponse{}, storeErr("list votes", err)
	}

	totals, err := e.repo.ImageVoteTotals(ctx, img.ID)
	if err != nil {
		slog.Warn("failed to load image totals", "image_id", img.ID, "error", err)
		totals = store.VoteTotals{}
	}

	return models.ImageVotesResponse{
		Votes: votes,
		Stats: models.ImageStats{AvgStars: totals.Average(), VoteCount: totals.VoteCount},
	}, nil
}
