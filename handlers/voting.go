// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ars-canvas/auth"
	"github.com/danielhkuo/ars-canvas/cliparse"
	"github.com/danielhkuo/ars-canvas/middleware"
	"github.com/danielhkuo/ars-canvas/models"
	"github.com/danielhkuo/ars-canvas/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(st *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: st, cfg: cfg}
}

// NewSession handles POST /session
// Mints an opaque voter identity for clients that want the server to pick
// one. Clients may equally generate their own; the core only requires
// non-emptiness.
func (h *VotingHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusCreated, models.SessionResponse{
		Voter: auth.NewVoterID(),
	})
}

// CastVote handles POST /rooms/{code}/votes
// A duplicate vote is not an error: the response reports recorded=false and
// the current counter, and the client shows "already voted".
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !store.ValidCode(code) {
		middleware.ErrorResponse(w, http.StatusBadRequest, store.ErrBadCode.Error())
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	recorded, err := h.store.CastVote(code, req.CommentID, req.Voter)
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "code", code, "comment_id", req.CommentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	votes := 0
	comment, err := h.store.GetComment(req.CommentID)
	if err == nil {
		votes = comment.Votes
	} else if !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to query comment", "error", err, "comment_id", req.CommentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if recorded {
		slog.Info("vote recorded", "code", code, "comment_id", req.CommentID)
	}

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Recorded: recorded,
		Votes:    votes,
	})
}

// HasVoted handles GET /rooms/{code}/votes/{id}
// UI affordance only - the unique insert in CastVote is the authoritative
// duplicate guard.
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !store.ValidCode(code) {
		middleware.ErrorResponse(w, http.StatusBadRequest, store.ErrBadCode.Error())
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	voted, err := h.store.HasVoted(code, id, r.URL.Query().Get("voter"))
	if err != nil {
		slog.Error("failed to check vote", "error", err, "code", code, "comment_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{HasVoted: voted})
}
