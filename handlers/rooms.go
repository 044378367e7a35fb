// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/ars-canvas/auth"
	"github.com/danielhkuo/ars-canvas/cliparse"
	"github.com/danielhkuo/ars-canvas/middleware"
	"github.com/danielhkuo/ars-canvas/models"
	"github.com/danielhkuo/ars-canvas/store"
)

type RoomHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewRoomHandler(st *store.Store, cfg cliparse.Config) *RoomHandler {
	return &RoomHandler{store: st, cfg: cfg}
}

// CreateRoom handles POST /rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !auth.CheckCreatePass(req.CreatePass, h.cfg.CreatePass) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, store.ErrBadPassphrase.Error())
		return
	}

	code, err := h.store.CreateRoom(req.Title, req.AdminPin, req.Code)
	if errors.Is(err, store.ErrBadCode) {
		middleware.ErrorResponse(w, http.StatusBadRequest, store.ErrBadCode.Error())
		return
	}
	if errors.Is(err, store.ErrCodeTaken) {
		middleware.ErrorResponse(w, http.StatusConflict, store.ErrCodeTaken.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create room", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create room")
		return
	}

	slog.Info("room created", "code", code, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoomResponse{
		Code: code,
	})
}

// GetRoom handles GET /rooms/{code} - the join/poll read path.
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := h.lookupRoom(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, room)
}

// GetLinks handles GET /rooms/{code}/links
// Builds role-locked share URLs for the three views. QR rendering is the
// client's job; the server only hands out the targets.
func (h *RoomHandler) GetLinks(w http.ResponseWriter, r *http.Request) {
	room, ok := h.lookupRoom(w, r)
	if !ok {
		return
	}

	link := func(view string, lock bool) string {
		q := url.Values{}
		q.Set("room", room.Code)
		q.Set("view", view)
		if lock {
			q.Set("lock", "1")
		}
		return h.cfg.BaseURL + "/?" + q.Encode()
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoomLinksResponse{
		Participant: link("p", true),
		Organizer:   link("o", false),
		Projector:   link("j", true),
	})
}

// SetClosed handles POST /rooms/{code}/close
func (h *RoomHandler) SetClosed(w http.ResponseWriter, r *http.Request) {
	room, ok := h.lookupRoom(w, r)
	if !ok {
		return
	}
	if !checkPin(w, r, room) {
		return
	}

	var req models.SetClosedRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	applied, err := h.store.SetClosed(room.Code, req.Closed)
	if err != nil {
		slog.Error("failed to toggle room", "error", err, "code", room.Code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("room closed state set", "code", room.Code, "closed", req.Closed, "applied", applied)
	middleware.NoContent(w)
}

// SetFontScale handles POST /rooms/{code}/font-scale
// The scale is a broadcast display hint picked up by every participant on
// their next poll.
func (h *RoomHandler) SetFontScale(w http.ResponseWriter, r *http.Request) {
	room, ok := h.lookupRoom(w, r)
	if !ok {
		return
	}
	if !checkPin(w, r, room) {
		return
	}

	var req models.SetFontScaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Scale < 0.5 || req.Scale > 3.0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scale must be between 0.5 and 3.0")
		return
	}

	if _, err := h.store.SetFontScale(room.Code, req.Scale); err != nil {
		slog.Error("failed to set font scale", "error", err, "code", room.Code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.NoContent(w)
}

// lookupRoom resolves the {code} path value, writing the error response on
// failure. Malformed codes never reach the store's row lookup.
func (h *RoomHandler) lookupRoom(w http.ResponseWriter, r *http.Request) (models.Room, bool) {
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

// checkPin gates organizer operations on the room's admin PIN, supplied in
// the X-Admin-Pin header. Rooms without a PIN are open.
func checkPin(w http.ResponseWriter, r *http.Request, room models.Room) bool {
	if !auth.CheckPin(room.AdminPin, r.Header.Get("X-Admin-Pin")) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin PIN")
		return false
	}
	return true
}
