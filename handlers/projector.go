// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/ars-canvas/cliparse"
	"github.com/danielhkuo/ars-canvas/middleware"
	"github.com/danielhkuo/ars-canvas/models"
	"github.com/danielhkuo/ars-canvas/store"
)

type ProjectorHandler struct {
	store *store.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewProjectorHandler(st *store.Store, cfg cliparse.Config) *ProjectorHandler {
	return &ProjectorHandler{store: st, cfg: cfg, now: func() time.Time { return time.Now().UTC() }}
}

// GetFocus handles GET /rooms/{code}/focus
// Resolves the focus pointer with the visibility check: a hidden or
// dangling target reads as "no focus".
func (h *ProjectorHandler) GetFocus(w http.ResponseWriter, r *http.Request) {
	room, ok := h.lookupRoom(w, r)
	if !ok {
		return
	}

	comment, focused, err := h.store.ResolveFocus(room)
	if err != nil {
		slog.Error("failed to resolve focus", "error", err, "code", room.Code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.FocusResponse{Focused: focused}
	if focused {
		resp.Comment = &comment
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SetFocus handles POST /rooms/{code}/focus
// Organizer override; a null comment_id clears the focus.
func (h *ProjectorHandler) SetFocus(w http.ResponseWriter, r *http.Request) {
	room, ok := h.lookupRoom(w, r)
	if !ok {
		return
	}
	if !checkPin(w, r, room) {
		return
	}

	var req models.SetFocusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.store.SetFocus(room.Code, req.CommentID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Comment not found in this room")
		return
	}
	if err != nil {
		slog.Error("failed to set focus", "error", err, "code", room.Code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("focus set", "code", room.Code)
	middleware.NoContent(w)
}

// Rotate handles POST /rooms/{code}/rotate
// Time-sliced rotation over the top visible comments. Deterministic in the
// wall clock, so every projector that calls this lands on the same comment.
// Query params period (seconds) and top_n override the 8s/20 defaults.
func (h *ProjectorHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	room, ok := h.lookupRoom(w, r)
	if !ok {
		return
	}

	period := intParam(r, "period", models.DefaultRotatePeriodSeconds)
	topN := intParam(r, "top_n", models.DefaultRotateTopN)

	id, rotated, err := h.store.AutoRotate(room.Code, h.now(), period, topN)
	if err != nil {
		slog.Error("failed to rotate focus", "error", err, "code", room.Code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RotateResponse{
		Rotated:   rotated,
		CommentID: id,
	})
}

func (h *ProjectorHandler) lookupRoom(w http.ResponseWriter, r *http.Request) (models.Room, bool) {
	code := r.PathValue("code")
	room, err := h.store.GetRoom(code)
	if errors.Is(err, store.ErrBadCode) {
		middleware.ErrorResponse(w, http.StatusBadRequest, store.ErrBadCode.Error())
		return models.Room{}, false
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return models.Room{}, false
	}
	if err != nil {
		slog.Error("failed to query room", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Room{}, false
	}
	return room, true
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
