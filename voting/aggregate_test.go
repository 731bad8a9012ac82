// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/store"
	"github.com/danielhkuo/quickly-rate/testutil"
)

func TestAllVoted(t *testing.T) {
	tests := []struct {
		name         string
		voters       int
		participants int
		want         bool
	}{
		{"nobody joined", 0, 0, false},
		{"votes but no participants", 3, 0, false},
		{"none voted", 0, 2, false},
		{"some voted", 1, 2, false},
		{"all voted", 2, 2, true},
		{"more voters than participants", 3, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allVoted(tt.voters, tt.participants); got != tt.want {
				t.Errorf("allVoted(%d, %d) = %v, want %v", tt.voters, tt.participants, got, tt.want)
			}
		})
	}
}

func TestCurrentImage(t *testing.T) {
	images := []models.Image{{ID: "a"}, {ID: "b"}}

	if img := currentImage(images, 1); img == nil || img.ID != "b" {
		t.Errorf("expected image b, got %+v", img)
	}
	for _, idx := range []int{-1, 2, 10} {
		if img := currentImage(images, idx); img != nil {
			t.Errorf("index %d: expected nil, got %+v", idx, img)
		}
	}
	if img := currentImage(nil, 0); img != nil {
		t.Errorf("empty list: expected nil, got %+v", img)
	}
}

func TestRankLeaderboard(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{ID: "low", AvgStars: 2.0, VoteCount: 50},
		{ID: "few", AvgStars: 4.0, VoteCount: 3},
		{ID: "many", AvgStars: 4.0, VoteCount: 10},
		{ID: "unrated-1", AvgStars: 0, VoteCount: 0},
		{ID: "unrated-2", AvgStars: 0, VoteCount: 0},
	}

	rankLeaderboard(entries)

	want := []string{"many", "few", "low", "unrated-1", "unrated-2"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, entries[i].ID)
		}
	}
}

func TestSnapshotAverages(t *testing.T) {
	engine, conn, _ := setupEngine(t)
	ctx := context.Background()

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusActive)
	imageIDs := testutil.AddTestImages(t, conn, eventID, 2)
	testutil.AddTestVote(t, conn, eventID, imageIDs[0], "v1", 3)
	testutil.AddTestVote(t, conn, eventID, imageIDs[0], "v2", 5)

	snap, err := engine.Snapshot(ctx, eventID, "")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if len(snap.VoteStats) != 2 {
		t.Fatalf("expected stats for 2 images, got %d", len(snap.VoteStats))
	}
	if s := snap.VoteStats[0]; s.ImageID != imageIDs[0] || s.AvgStars != 4.0 || s.VoteCount != 2 {
		t.Errorf("unexpected stats for rated image: %+v", s)
	}
	if s := snap.VoteStats[1]; s.ImageID != imageIDs[1] || s.AvgStars != 0 || s.VoteCount != 0 {
		t.Errorf("unrated image should have zero stats: %+v", s)
	}

	// Votes without participants never count as everyone voting
	if snap.ParticipantCount != 0 || snap.VotesOnCurrentImage != 2 || snap.AllVoted {
		t.Errorf("unexpected progress: participants=%d votes=%d allVoted=%v",
			snap.ParticipantCount, snap.VotesOnCurrentImage, snap.AllVoted)
	}
}

func TestSnapshotRegistersVoter(t *testing.T) {
	engine, conn, _ := setupEngine(t)
	ctx := context.Background()

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusActive)
	testutil.AddTestImages(t, conn, eventID, 1)

	for i := 0; i < 3; i++ {
		snap, err := engine.Snapshot(ctx, eventID, "voter-1")
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		if snap.ParticipantCount != 1 {
			t.Errorf("poll %d: expected 1 participant, got %d", i, snap.ParticipantCount)
		}
	}

	view, err := engine.Presentation(ctx, eventID)
	if err != nil {
		t.Fatalf("Presentation() error = %v", err)
	}
	if view.ParticipantCount != 1 {
		t.Errorf("presentation should see 1 participant, got %d", view.ParticipantCount)
	}
}

func TestSnapshotPointerPastEnd(t *testing.T) {
	engine, conn, _ := setupEngine(t)

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusClosed)
	testutil.AddTestImages(t, conn, eventID, 2)
	testutil.SetCurrentIndex(t, conn, eventID, 2)

	snap, err := engine.Snapshot(context.Background(), eventID, "")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap.CurrentImage != nil {
		t.Errorf("expected no current image, got %+v", snap.CurrentImage)
	}
	if snap.CurrentImageIndex != 2 || snap.VotesOnCurrentImage != 0 || snap.AllVoted {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestSnapshotNotFound(t *testing.T) {
	engine, _, _ := setupEngine(t)

	if _, err := engine.Snapshot(context.Background(), "missing", "v1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := engine.Presentation(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := engine.Leaderboard(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotRegistrationFailureIsNotFatal(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := &faultyRepo{Repository: store.New(conn), failParticipants: true}
	engine := NewEngine(repo, nil)

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusActive)
	testutil.AddTestImages(t, conn, eventID, 1)

	snap, err := engine.Snapshot(context.Background(), eventID, "voter-1")
	if err != nil {
		t.Fatalf("Snapshot() should survive a registration failure, got %v", err)
	}
	if snap.ParticipantCount != 0 {
		t.Errorf("expected 0 participants, got %d", snap.ParticipantCount)
	}
	if snap.CurrentImage == nil {
		t.Error("expected the current image to be present")
	}
}

func TestSnapshotDegradesDerivedCounts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := &faultyRepo{Repository: store.New(conn), failCountVoters: true, failTotals: true}
	engine := NewEngine(repo, nil)

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusActive)
	imageIDs := testutil.AddTestImages(t, conn, eventID, 1)
	testutil.AddTestParticipant(t, conn, eventID, "v1")
	testutil.AddTestVote(t, conn, eventID, imageIDs[0], "v1", 4)

	snap, err := engine.Snapshot(context.Background(), eventID, "")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap.VotesOnCurrentImage != 0 || snap.AllVoted {
		t.Errorf("expected degraded vote count, got votes=%d allVoted=%v", snap.VotesOnCurrentImage, snap.AllVoted)
	}
	if len(snap.VoteStats) != 1 || snap.VoteStats[0].VoteCount != 0 {
		t.Errorf("expected zero-filled stats, got %+v", snap.VoteStats)
	}

	// The leaderboard has no degraded form
	if _, err := engine.Leaderboard(context.Background(), eventID); !errors.Is(err, ErrStore) {
		t.Errorf("expected ErrStore from leaderboard, got %v", err)
	}
}

func TestLeaderboard(t *testing.T) {
	engine, conn, _ := setupEngine(t)

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusClosed)
	ids := testutil.AddTestImages(t, conn, eventID, 3)
	testutil.AddTestParticipant(t, conn, eventID, "v1")
	testutil.AddTestParticipant(t, conn, eventID, "v2")

	// ids[0]: 2.0 from 2 votes, ids[1]: 4.0 from 1, ids[2]: 4.0 from 2
	testutil.AddTestVote(t, conn, eventID, ids[0], "v1", 1)
	testutil.AddTestVote(t, conn, eventID, ids[0], "v2", 3)
	testutil.AddTestVote(t, conn, eventID, ids[1], "v1", 4)
	testutil.AddTestVote(t, conn, eventID, ids[2], "v1", 5)
	testutil.AddTestVote(t, conn, eventID, ids[2], "v2", 3)

	board, err := engine.Leaderboard(context.Background(), eventID)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}

	if board.ParticipantCount != 2 {
		t.Errorf("expected 2 participants, got %d", board.ParticipantCount)
	}
	want := []struct {
		id    string
		avg   float64
		count int
	}{
		{ids[2], 4.0, 2},
		{ids[1], 4.0, 1},
		{ids[0], 2.0, 2},
	}
	if len(board.Leaderboard) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(board.Leaderboard))
	}
	for i, w := range want {
		got := board.Leaderboard[i]
		if got.ID != w.id || got.AvgStars != w.avg || got.VoteCount != w.count {
			t.Errorf("position %d: expected %s %.1f/%d, got %s %.1f/%d",
				i, w.id, w.avg, w.count, got.ID, got.AvgStars, got.VoteCount)
		}
	}
}

func TestLeaderboardNoImages(t *testing.T) {
	engine, conn, _ := setupEngine(t)

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusDraft)

	board, err := engine.Leaderboard(context.Background(), eventID)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if board.Leaderboard == nil || len(board.Leaderboard) != 0 {
		t.Errorf("expected empty non-nil leaderboard, got %v", board.Leaderboard)
	}
}

func TestImageVotes(t *testing.T) {
	engine, conn, _ := setupEngine(t)

	eventID, _ := testutil.CreateTestEvent(t, conn, models.StatusActive)
	ids := testutil.AddTestImages(t, conn, eventID, 1)
	testutil.AddTestVote(t, conn, eventID, ids[0], "v1", 2)
	testutil.AddTestVote(t, conn, eventID, ids[0], "v2", 5)

	resp, err := engine.ImageVotes(context.Background(), ids[0])
	if err != nil {
		t.Fatalf("ImageVotes() error = %v", err)
	}
	if len(resp.Votes) != 2 {
		t.Errorf("expected 2 votes, got %d", len(resp.Votes))
	}
	if resp.Stats.AvgStars != 3.5 || resp.Stats.VoteCount != 2 {
		t.Errorf("unexpected stats %+v", resp.Stats)
	}

	if _, err := engine.ImageVotes(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
