// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateEventRequest: name
  - UpdateStatusRequest: status
  - SubmitVoteRequest: eventId, imageId, voterId, stars

# Response Types

  - CreateEventResponse: id, qr_code, name, status, join_url, qr_image_url
  - AdvanceResponse: success, nextIndex, isComplete
  - SubmitVoteResponse: success, id, voterId, updated
  - UploadImageResponse: stored image record plus size
  - LeaderboardResponse: leaderboard, participantCount
  - ImageVotesResponse: votes, stats
  - ErrorResponse: error, reason, message

# Domain Types

  - Event: lifecycle status, join code, current image pointer
  - Image: content URL and filename; upload time defines voting order
  - Participant: first sighting of a voter in an event
  - Vote: one star rating per (event, image, voter)

# Aggregates

  - ImageStats: average stars and vote count for one image
  - EventSnapshot: the participant poll response
  - PresentationView: the presentation screen poll response
  - LeaderboardEntry: one ranked image

# Constants

Status values:

	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"

Error reasons:

	ReasonBadRequest        = "bad_request"
	ReasonValidation        = "validation_error"
	ReasonNotFound          = "not_found"
	ReasonInvalidTransition = "invalid_transition"
	ReasonStore             = "store_error"
*/
package models
