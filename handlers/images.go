// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"github.com/danielhkuo/quickly-rate/cliparse"
	"github.com/danielhkuo/quickly-rate/middleware"
	"github.com/danielhkuo/quickly-rate/models"
	"github.com/danielhkuo/quickly-rate/voting"
)

const (
	// multipartSlack covers form fields and part headers around the file
	multipartSlack = 1 << 20
	// multipartMemory is how much of the form is held in memory before
	// spilling to temp files
	multipartMemory = 32 << 20
)

type ImageHandler struct {
	engine *voting.Engine
	cfg    cliparse.Config
}

func NewImageHandler(engine *voting.Engine, cfg cliparse.Config) *ImageHandler {
	return &ImageHandler{engine: engine, cfg: cfg}
}

// Upload handles POST /images
// Expects multipart fields "file" and "eventId". The file is stored inline
// as a data URL.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.cfg.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartSlack)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.tooLarge(w, 0)
			return
		}
		badRequest(w, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		invalidField(w, "file is required")
		return
	}
	defer file.Close()

	eventID := strings.TrimSpace(r.FormValue("eventId"))
	if eventID == "" {
		invalidField(w, "eventId is required")
		return
	}

	if header.Size > limit {
		h.tooLarge(w, header.Size)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		slog.Error("failed to read upload", "event_id", eventID, "error", err)
		badRequest(w, "Failed to read file")
		return
	}
	if int64(len(data)) > limit {
		h.tooLarge(w, int64(len(data)))
		return
	}
	if len(data) == 0 {
		invalidField(w, "file is empty")
		return
	}

	mime := mimetype.Detect(data)
	mediaType, _, _ := strings.Cut(mime.String(), ";")
	if !strings.HasPrefix(mediaType, "image/") {
		invalidField(w, fmt.Sprintf("file must be an image, got %s", mediaType))
		return
	}

	dataURL := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)

	img, err := h.engine.AddImage(r.Context(), eventID, header.Filename, dataURL)
	if err != nil {
		writeEngineError(w, err, "store image")
		return
	}

	slog.Info("image uploaded", "event_id", eventID, "image_id", img.ID, "type", mediaType, "size", humanize.IBytes(uint64(len(data))))

	middleware.JSONResponse(w, http.StatusCreated, models.UploadImageResponse{
		ID:         img.ID,
		URL:        img.URL,
		Filename:   img.Filename,
		EventID:    img.EventID,
		Size:       int64(len(data)),
		UploadedAt: img.UploadedAt,
	})
}

// tooLarge reports an upload over the configured limit. size is 0 when the
// request was cut off before the file size was known.
func (h *ImageHandler) tooLarge(w http.ResponseWriter, size int64) {
	limit := humanize.IBytes(uint64(h.cfg.MaxUploadBytes))
	if size > 0 {
		invalidField(w, fmt.Sprintf("file is %s, larger than the %s limit", humanize.IBytes(uint64(size)), limit))
		return
	}
	invalidField(w, fmt.Sprintf("file is larger than the %s limit", limit))
}

// GetImageVotes handles GET /images/{id}/votes
func (h *ImageHandler) GetImageVotes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.engine.ImageVotes(r.Context(), r.PathValue("id"))
	if err != nil {
		writeEngineError(w, err, "load image votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
