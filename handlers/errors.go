// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/voting"
)

// writeEngineError maps an engine error to its HTTP status. Store failures
// are logged and reported with a generic message.
func writeEngineError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, voting.ErrValidation):
		middleware.ReasonResponse(w, http.StatusBadRequest, models.ReasonValidation, detail(err, voting.ErrValidation))
	case errors.Is(err, voting.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, detail(err, voting.ErrNotFound)+" not found")
	case errors.Is(err, voting.ErrInvalidTransition):
		middleware.ErrorResponse(w, http.StatusConflict, "cannot change status from "+detail(err, voting.ErrInvalidTransition))
	default:
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// detail strips the sentinel prefix from an engine error message
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// badRequest reports a request that could not be decoded at all
func badRequest(w http.ResponseWriter, message string) {
	middleware.ErrorResponse(w, http.StatusBadRequest, message)
}

// invalidField reports a well-formed request with a missing or bad field
func invalidField(w http.ResponseWriter, message string) {
	middleware.ReasonResponse(w, http.StatusBadRequest, models.ReasonValidation, message)
}
