// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Rate API.

# Route Registration

NewRouter builds an http.ServeMux with every endpoint and wraps it in CORS:

	handler := router.NewRouter(engine, cfg)

# Endpoints

Health:

	GET /health

Event lifecycle (admin):

	POST /events                 - Create event
	PUT  /events/{id}/status     - Change status
	POST /events/{id}/next-image - Advance, closing after the last image

Polling (participants and presentation screen):

	GET /events/qr/{code}?voter_id=  - Find event by join code
	GET /events/{id}?voter_id=       - Event snapshot
	GET /events/{id}/presentation    - Presentation view
	GET /events/{id}/leaderboard     - Ranked images

Images and votes:

	POST /images             - Upload image (multipart)
	GET  /images/{id}/votes  - Votes on one image
	POST /votes              - Submit or replace a rating

The join code lookup and the two per-event views share one
"GET /events/{id}/{view}" pattern.
*/
package router
