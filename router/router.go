// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-rate/cliparse"
	"github.com/danielhkuo/quickly-rate/handlers"
	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/voting"
)

func NewRouter(engine *voting.Engine, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(engine, cfg)
	imageHandler := handlers.NewImageHandler(engine, cfg)
	voteHandler := handlers.NewVoteHandler(engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Event lifecycle (admin)
	mux.HandleFunc("POST /events", middleware.WithLogging(eventHandler.CreateEvent))
	mux.HandleFunc("PUT /events/{id}/status", middleware.WithLogging(eventHandler.UpdateStatus))
	mux.HandleFunc("POST /events/{id}/next-image", middleware.WithLogging(eventHandler.NextImage))

	// Polling reads
	mux.HandleFunc("GET /events/{id}", middleware.WithLogging(eventHandler.GetEvent))
	mux.HandleFunc("GET /events/{id}/{view}", middleware.WithLogging(eventView(eventHandler)))

	// Images and votes
	mux.HandleFunc("POST /images", middleware.WithLogging(imageHandler.Upload))
	mux.HandleFunc("GET /images/{id}/votes", middleware.WithLogging(imageHandler.GetImageVotes))
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.SubmitVote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-rate API v1"))
	})

	return middleware.CORS(mux)
}

// eventView serves GET /events/qr/{code}, /events/{id}/presentation and
// /events/{id}/leaderboard. ServeMux rejects them as separate patterns:
// "/events/qr/leaderboard" would match two of them.
func eventView(h *handlers.EventHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, view := r.PathValue("id"), r.PathValue("view")
		switch {
		case id == "qr":
			r.SetPathValue("code", view)
			h.GetEventByCode(w, r)
		case view == "presentation":
			h.GetPresentation(w, r)
		case view == "leaderboard":
			h.GetLeaderboard(w, r)
		default:
			middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		}
	}
}
