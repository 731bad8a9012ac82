// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Rate API.

# Handler Types

Each handler is a struct around the voting engine:

  - EventHandler: Event lifecycle, polling reads and progression
  - ImageHandler: Image upload and per-image vote listing
  - VoteHandler: Star rating submission

Handlers are created via constructor functions:

	engine := voting.NewEngine(store.New(db), publisher)
	eventHandler := handlers.NewEventHandler(engine, cfg)

# Event Lifecycle

Events progress through three states: draft → active → closed

	POST /events                  → CreateEvent (returns qr_code, join_url)
	PUT /events/{id}/status       → UpdateStatus
	POST /events/{id}/next-image  → NextImage (closes after the last image)

# Polling

Participant devices and the presentation screen poll every second or two:

	GET /events/qr/{code}?voter_id=   → GetEventByCode (joins the event)
	GET /events/{id}?voter_id=        → GetEvent (snapshot, joins the event)
	GET /events/{id}/presentation     → GetPresentation
	GET /events/{id}/leaderboard      → GetLeaderboard

# Images and Votes

	POST /images             → Upload (multipart "file" and "eventId")
	GET /images/{id}/votes   → GetImageVotes
	POST /votes              → SubmitVote (create or replace)

# Errors

Engine errors map to 400 (validation_error), 404 (not_found),
409 (invalid_transition) and 500 (store_error). Store failure details are
logged, never returned.
*/
package handlers
