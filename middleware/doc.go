// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /votes", middleware.WithLogging(handler))

Logs one line per request with method, path, status, client_ip and
duration_ms. Successful GETs log at debug level, since clients poll them
continuously.

# CORS Middleware

Any origin may call the API:

	handler := middleware.CORS(mux)

Allows methods GET, POST, PUT, DELETE, OPTIONS with the Content-Type header.
Preflight requests are answered directly with 200.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "event not found")
	middleware.ReasonResponse(w, http.StatusBadRequest, models.ReasonValidation, "stars is required")

Error bodies carry the status text, a machine-readable reason and a message.
ErrorResponse picks the reason from the status code.

Parse JSON request bodies:

	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
