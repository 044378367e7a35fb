// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ars-canvas/cliparse"
	"github.com/danielhkuo/ars-canvas/middleware"
	"github.com/danielhkuo/ars-canvas/models"
	"github.com/danielhkuo/ars-canvas/store"
)

type CommentHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewCommentHandler(st *store.Store, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{store: st, cfg: cfg}
}

// AddComment handles POST /rooms/{code}/comments
// Always acknowledges: blank content, unknown rooms, and closed rooms are
// absorbed silently so participant retries stay safe.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !store.ValidCode(code) {
		middleware.ErrorResponse(w, http.StatusBadRequest, store.ErrBadCode.Error())
		return
	}

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	applied, err := h.store.AddComment(code, req.Author, req.Content)
	if err != nil {
		slog.Error("failed to add comment", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if applied {
		slog.Info("comment added", "code", code)
	}
	middleware.NoContent(w)
}

// ListComments handles GET /rooms/{code}/comments
// Query params: keyword (case-sensitive substring filter), voter (annotates
// has_voted), include_hidden=1 (organizer listing, PIN-gated).
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	room, err := h.store.GetRoom(code)
	if errors.Is(err, store.ErrBadCode) {
		middleware.ErrorResponse(w, http.StatusBadRequest, store.ErrBadCode.Error())
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		slog.Error("failed to query room", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	includeHidden := r.URL.Query().Get("include_hidden") == "1"
	if includeHidden && !checkPin(w, r, room) {
		return
	}

	keyword := r.URL.Query().Get("keyword")
	voter := r.URL.Query().Get("voter")

	comments, err := h.store.ListComments(room.Code, keyword, includeHidden)
	if err != nil {
		slog.Error("failed to list comments", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	limit := models.ParticipantListLimit
	if includeHidden {
		limit = models.OrganizerListLimit
	}
	if len(comments) > limit {
		comments = comments[:limit]
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, c := range comments {
		view := models.CommentView{
			Comment: c,
			Age:     humanize.Time(c.CreatedAt),
		}
		if voter != "" {
			voted, err := h.store.HasVoted(room.Code, c.ID, voter)
			if err != nil {
				slog.Error("failed to check vote", "error", err, "comment_id", c.ID)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
				return
			}
			view.HasVoted = voted
		}
		views = append(views, view)
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// TagComment handles POST /comments/{id}/tags
func (h *CommentHandler) TagComment(w http.ResponseWriter, r *http.Request) {
	var req models.TagCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, room, ok := h.moderationTarget(w, r)
	if !ok {
		return
	}
	if !checkPin(w, r, room) {
		return
	}

	applied, err := h.store.TagComment(comment.ID, req.Tag)
	if err != nil {
		slog.Error("failed to tag comment", "error", err, "comment_id", comment.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if applied {
		slog.Info("comment tagged", "comment_id", comment.ID, "tag", req.Tag)
	}
	middleware.NoContent(w)
}

// SetHidden handles POST /comments/{id}/hidden
func (h *CommentHandler) SetHidden(w http.ResponseWriter, r *http.Request) {
	var req models.SetHiddenRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, room, ok := h.moderationTarget(w, r)
	if !ok {
		return
	}
	if !checkPin(w, r, room) {
		return
	}

	if _, err := h.store.SetHidden(comment.ID, req.Hidden); err != nil {
		slog.Error("failed to set hidden", "error", err, "comment_id", comment.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("comment visibility set", "comment_id", comment.ID, "hidden", req.Hidden)
	middleware.NoContent(w)
}

// moderationTarget resolves the {id} path value to a comment and its room.
// A missing comment or room answers 204 and reports ok=false: moderation
// calls against targets that vanished since the moderator's last poll are
// expected, and are absorbed rather than surfaced.
func (h *CommentHandler) moderationTarget(w http.ResponseWriter, r *http.Request) (models.Comment, models.Room, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid comment id")
		return models.Comment{}, models.Room{}, false
	}

	comment, err := h.store.GetComment(id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.NoContent(w)
		return models.Comment{}, models.Room{}, false
	}
	if err != nil {
		slog.Error("failed to query comment", "error", err, "comment_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Comment{}, models.Room{}, false
	}

	room, err := h.store.GetRoom(comment.RoomCode)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrBadCode) {
		middleware.NoContent(w)
		return models.Comment{}, models.Room{}, false
	}
	if err != nil {
		slog.Error("failed to query room", "error", err, "code", comment.RoomCode)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Comment{}, models.Room{}, false
	}

	return comment, room, true
}
