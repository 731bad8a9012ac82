// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/testutil"
)

// TestFullEventWorkflow tests the complete live event:
// 1. Create event
// 2. Upload 3 images
// 3. Activate
// 4. Two participants join by code
// 5. Both rate the first image (5 and 3)
// 6. Snapshot shows avg 4.0 and everyone voted
// 7. Advance to the second image
// 8. Advance past the end and read the leaderboard
func TestFullEventWorkflow(t *testing.T) {
	_, engine, cfg := setupHandlers(t)
	eventHandler := NewEventHandler(engine, cfg)
	imageHandler := NewImageHandler(engine, cfg)
	voteHandler := NewVoteHandler(engine)

	// Step 1: Create an event
	w := httptest.NewRecorder()
	eventHandler.CreateEvent(w, testutil.MakeRequest("POST", "/events", models.CreateEventRequest{Name: "Integration Night"}, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create event failed: %d - %s", w.Code, w.Body.String())
	}
	var created models.CreateEventResponse
	testutil.AssertJSON(t, w, &created)
	eventID := created.ID
	t.Logf("Step 1 - Created event: %s (code %s)", eventID, created.QRCode)

	// Step 2: Upload 3 images
	imageIDs := make([]string, 0, 3)
	for _, name := range []string{"first.png", "second.png", "third.png"} {
		w := httptest.NewRecorder()
		imageHandler.Upload(w, uploadRequest(t, eventID, name, pngBytes))
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Upload %s failed: %d - %s", name, w.Code, w.Body.String())
		}
		var img models.UploadImageResponse
		testutil.AssertJSON(t, w, &img)
		imageIDs = append(imageIDs, img.ID)
	}

	// Step 3: Activate
	req := testutil.MakeRequest("PUT", "/events/"+eventID+"/status", models.UpdateStatusRequest{Status: models.StatusActive}, nil)
	req.SetPathValue("id", eventID)
	w = httptest.NewRecorder()
	eventHandler.UpdateStatus(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Activate failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 4: Two participants join
	for _, voter := range []string{"alice", "bob"} {
		req := testutil.MakeRequest("GET", "/events/qr/"+created.QRCode+"?voter_id="+voter, nil, nil)
		req.SetPathValue("code", created.QRCode)
		w := httptest.NewRecorder()
		eventHandler.GetEventByCode(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - %s join failed: %d - %s", voter, w.Code, w.Body.String())
		}
	}

	// Step 5: Both rate the first image
	for voter, stars := range map[string]int{"alice": 5, "bob": 3} {
		req := testutil.MakeRequest("POST", "/votes", map[string]interface{}{
			"eventId": eventID,
			"imageId": imageIDs[0],
			"voterId": voter,
			"stars":   stars,
		}, nil)
		w := httptest.NewRecorder()
		voteHandler.SubmitVote(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 5 - %s vote failed: %d - %s", voter, w.Code, w.Body.String())
		}
	}

	// Step 6: Snapshot
	req = testutil.MakeRequest("GET", "/events/"+eventID+"?voter_id=alice", nil, nil)
	req.SetPathValue("id", eventID)
	w = httptest.NewRecorder()
	eventHandler.GetEvent(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.EventSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.CurrentImage == nil || snap.CurrentImage.ID != imageIDs[0] {
		t.Fatalf("Step 6 - Expected first image current, got %+v", snap.CurrentImage)
	}
	if stats := snap.VoteStats[0]; stats.AvgStars != 4.0 || stats.VoteCount != 2 {
		t.Errorf("Step 6 - Expected avg 4.0 from 2 votes, got %+v", stats)
	}
	if snap.ParticipantCount != 2 || !snap.AllVoted {
		t.Errorf("Step 6 - Expected 2 participants all voted, got %d / %v", snap.ParticipantCount, snap.AllVoted)
	}

	// Step 7: Advance
	advance := func() models.AdvanceResponse {
		t.Helper()
		req := testutil.MakeRequest("POST", "/events/"+eventID+"/next-image", nil, nil)
		req.SetPathValue("id", eventID)
		w := httptest.NewRecorder()
		eventHandler.NextImage(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.AdvanceResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	if resp := advance(); resp.NextIndex != 1 || resp.IsComplete {
		t.Fatalf("Step 7 - Unexpected advance %+v", resp)
	}

	req = testutil.MakeRequest("GET", "/events/"+eventID+"/presentation", nil, nil)
	req.SetPathValue("id", eventID)
	w = httptest.NewRecorder()
	eventHandler.GetPresentation(w, req)
	var view models.PresentationView
	testutil.AssertJSON(t, w, &view)
	if view.Event.Status != models.StatusActive || view.CurrentImage == nil || view.CurrentImage.ID != imageIDs[1] {
		t.Errorf("Step 7 - Expected second image of active event, got %+v", view)
	}

	// Step 8: Run off the end, then read the leaderboard
	advance()
	if resp := advance(); !resp.IsComplete {
		t.Errorf("Step 8 - Expected event complete, got %+v", resp)
	}

	req = testutil.MakeRequest("GET", "/events/"+eventID+"/leaderboard", nil, nil)
	req.SetPathValue("id", eventID)
	w = httptest.NewRecorder()
	eventHandler.GetLeaderboard(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var board models.LeaderboardResponse
	testutil.AssertJSON(t, w, &board)
	if len(board.Leaderboard) != 3 || board.Leaderboard[0].ID != imageIDs[0] {
		t.Errorf("Step 8 - Expected rated image first, got %+v", board.Leaderboard)
	}
	if board.ParticipantCount != 2 {
		t.Errorf("Step 8 - Expected 2 participants, got %d", board.ParticipantCount)
	}
}
