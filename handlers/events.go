// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"

	"github.com/danielhkuo/quickly-rate/cliparse"
	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/voting"
)

type EventHandler struct {
	engine *voting.Engine
	cfg    cliparse.Config
}

func NewEventHandler(engine *voting.Engine, cfg cliparse.Config) *EventHandler {
	return &EventHandler{engine: engine, cfg: cfg}
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	event, err := h.engine.CreateEvent(r.Context(), req.Name)
	if err != nil {
		writeEngineError(w, err, "create event")
		return
	}

	joinURL := h.joinURL(event.QRCode)
	middleware.JSONResponse(w, http.StatusCreated, models.CreateEventResponse{
		ID:         event.ID,
		QRCode:     event.QRCode,
		Name:       event.Name,
		Status:     event.Status,
		JoinURL:    joinURL,
		QRImageURL: h.cfg.QRServiceURL + url.QueryEscape(joinURL),
	})
}

// joinURL is the link encoded in the event's QR code
func (h *EventHandler) joinURL(code string) string {
	return h.cfg.PublicBaseURL + "?code=" + url.QueryEscape(code)
}

// GetEventByCode handles GET /events/qr/{code}
func (h *EventHandler) GetEventByCode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	event, err := h.engine.JoinByCode(r.Context(), code, r.URL.Query().Get("voter_id"))
	if err != nil {
		writeEngineError(w, err, "look up event by code")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		invalidField(w, "event id is required")
		return
	}

	snap, err := h.engine.Snapshot(r.Context(), eventID, r.URL.Query().Get("voter_id"))
	if err != nil {
		writeEngineError(w, err, "load event")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}

// UpdateStatus handles PUT /events/{id}/status
func (h *EventHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	if err := h.engine.SetStatus(r.Context(), eventID, req.Status); err != nil {
		writeEngineError(w, err, "update event status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// GetPresentation handles GET /events/{id}/presentation
func (h *EventHandler) GetPresentation(w http.ResponseWriter, r *http.Request) {
	view, err := h.engine.Presentation(r.Context(), r.PathValue("id"))
	if err != nil {
		writeEngineError(w, err, "load presentation")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// NextImage handles POST /events/{id}/next-image
func (h *EventHandler) NextImage(w http.ResponseWriter, r *http.Request) {
	resp, err := h.engine.Advance(r.Context(), r.PathValue("id"))
	if err != nil {
		writeEngineError(w, err, "advance event")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetLeaderboard handles GET /events/{id}/leaderboard
func (h *EventHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.engine.Leaderboard(r.Context(), r.PathValue("id"))
	if err != nil {
		writeEngineError(w, err, "load leaderboard")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, board)
}
