// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/testutil"
	"github.com/danielhkuo/quickly-rate/voting"
)

func TestWriteEngineError(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedReason  string
		expectedMessage string
	}{
		{
			name:            "validation",
			err:             fmt.Errorf("%w: stars is required", voting.ErrValidation),
			expectedStatus:  http.StatusBadRequest,
			expectedReason:  models.ReasonValidation,
			expectedMessage: "stars is required",
		},
		{
			name:            "not found",
			err:             fmt.Errorf("%w: image", voting.ErrNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedReason:  models.ReasonNotFound,
			expectedMessage: "image not found",
		},
		{
			name:            "invalid transition",
			err:             fmt.Errorf("%w: closed to active", voting.ErrInvalidTransition),
			expectedStatus:  http.StatusConflict,
			expectedReason:  models.ReasonInvalidTransition,
			expectedMessage: "cannot change status from closed to active",
		},
		{
			name:            "store failure hides cause",
			err:             fmt.Errorf("%w: list images: %w", voting.ErrStore, errors.New("disk I/O error")),
			expectedStatus:  http.StatusInternalServerError,
			expectedReason:  models.ReasonStore,
			expectedMessage: "Database error",
		},
		{
			name:            "unclassified error",
			err:             errors.New("surprise"),
			expectedStatus:  http.StatusInternalServerError,
			expectedReason:  models.ReasonStore,
			expectedMessage: "Database error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			writeEngineError(w, tc.err, "test")

			testutil.AssertStatus(t, w, tc.expectedStatus)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Reason != tc.expectedReason {
				t.Errorf("Expected reason %s, got %s", tc.expectedReason, resp.Reason)
			}
			if resp.Message != tc.expectedMessage {
				t.Errorf("Expected message %q, got %q", tc.expectedMessage, resp.Message)
			}
		})
	}
}
