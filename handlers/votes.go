// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/voting"
)

type VoteHandler struct {
	engine *voting.Engine
}

func NewVoteHandler(engine *voting.Engine) *VoteHandler {
	return &VoteHandler{engine: engine}
}

// SubmitVote handles POST /votes
// A repeat submission by the same voter for the same image replaces the
// earlier rating.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	stars, err := voting.ParseStars(req.Stars)
	if err != nil {
		writeEngineError(w, err, "parse stars")
		return
	}

	result, err := h.engine.CastVote(r.Context(), voting.VoteInput{
		EventID: req.EventID,
		ImageID: req.ImageID,
		VoterID: req.VoterID,
		Stars:   stars,
	})
	if err != nil {
		writeEngineError(w, err, "submit vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Success: true,
		ID:      result.Vote.ID,
		VoterID: result.Vote.VoterID,
		Updated: result.Updated,
	})
}
