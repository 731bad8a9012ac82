// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Event status constants
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"
)

// Machine-checkable error reasons
const (
	ReasonBadRequest        = "bad_request"
	ReasonValidation        = "validation_error"
	ReasonNotFound          = "not_found"
	ReasonInvalidTransition = "invalid_transition"
	ReasonStore             = "store_error"
)

// Request types

type CreateEventRequest struct {
	Name string `json:"name"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Stars is a json.Number so fractional ratings can be told apart from
// malformed JSON and reported as validation errors.
type SubmitVoteRequest struct {
	EventID string      `json:"eventId"`
	ImageID string      `json:"imageId"`
	VoterID string      `json:"voterId"`
	Stars   json.Number `json:"stars"`
}

// Response types

type CreateEventResponse struct {
	ID         string `json:"id"`
	QRCode     string `json:"qr_code"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	JoinURL    string `json:"join_url"`
	QRImageURL string `json:"qr_image_url"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type AdvanceResponse struct {
	Success    bool `json:"success"`
	NextIndex  int  `json:"nextIndex"`
	IsComplete bool `json:"isComplete"`
}

type SubmitVoteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	VoterID string `json:"voterId"`
	Updated bool   `json:"updated"`
}

type UploadImageResponse struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	EventID    string    `json:"event_id"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type LeaderboardResponse struct {
	Leaderboard      []LeaderboardEntry `json:"leaderboard"`
	ParticipantCount int                `json:"participantCount"`
}

type ImageVotesResponse struct {
	Votes []Vote     `json:"votes"`
	Stats ImageStats `json:"stats"`
}

// Domain types

type Event struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	QRCode            string    `json:"qr_code"`
	CurrentImageIndex int       `json:"current_image_index"`
	CreatedAt         time.Time `json:"created_at"`
}

type Image struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Participant struct {
	ID       string    `json:"id"`
	EventID  string    `json:"event_id"`
	VoterID  string    `json:"voter_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type Vote struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	ImageID   string    `json:"image_id"`
	VoterID   string    `json:"voter_id"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
}

// Aggregates

// ImageStats summarizes every vote ever cast on one image.
// AvgStars is 0 when VoteCount is 0.
type ImageStats struct {
	ImageID   string  `json:"image_id,omitempty"`
	AvgStars  float64 `json:"avg_stars"`
	VoteCount int     `json:"vote_count"`
}

// EventSnapshot is what participant devices poll. The event's own fields
// are flattened into the top level.
type EventSnapshot struct {
	Event
	Images              []Image      `json:"images"`
	VoteStats           []ImageStats `json:"voteStats"`
	ParticipantCount    int          `json:"participantCount"`
	CurrentImageIndex   int          `json:"currentImageIndex"`
	CurrentImage        *Image       `json:"currentImage"`
	VotesOnCurrentImage int          `json:"votesOnCurrentImage"`
	AllVoted            bool         `json:"allVotedOnCurrent"`
}

// PresentationView is what the shared screen polls.
type PresentationView struct {
	Event               Event  `json:"event"`
	CurrentImage        *Image `json:"currentImage"`
	CurrentImageIndex   int    `json:"currentImageIndex"`
	TotalImages         int    `json:"totalImages"`
	ParticipantCount    int    `json:"participantCount"`
	VotesOnCurrentImage int    `json:"votesOnCurrentImage"`
	AllVoted            bool   `json:"allVoted"`
}

type LeaderboardEntry struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
	AvgStars   float64   `json:"avg_stars"`
	VoteCount  int       `json:"vote_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}
