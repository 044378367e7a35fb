// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ars-canvas/cliparse"
	"github.com/danielhkuo/ars-canvas/cluster"
	"github.com/danielhkuo/ars-canvas/middleware"
	"github.com/danielhkuo/ars-canvas/models"
	"github.com/danielhkuo/ars-canvas/store"
)

type ClusterHandler struct {
	store     *store.Store
	cfg       cliparse.Config
	clusterer cluster.Clusterer
}

func NewClusterHandler(st *store.Store, cfg cliparse.Config, c cluster.Clusterer) *ClusterHandler {
	return &ClusterHandler{store: st, cfg: cfg, clusterer: c}
}

// GetClusters handles GET /rooms/{code}/clusters
// Best-effort theme grouping of the visible comments for the organizer.
// Any clustering failure degrades to available=false; it never affects
// comment, vote, or room state.
func (h *ClusterHandler) GetClusters(w http.ResponseWriter, r *http.Request) {
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

	comments, err := h.store.ListComments(room.Code, "", false)
	if err != nil {
		slog.Error("failed to list comments", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.ClusterResponse{Clusters: []models.ClusterGroup{}}
	if len(comments) == 0 {
		middleware.JSONResponse(w, http.StatusOK, resp)
		return
	}

	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Content
	}

	assignments, err := h.runClusterer(texts, cluster.ClampK(len(texts)))
	if err != nil {
		slog.Warn("clustering unavailable", "error", err, "code", code)
		middleware.JSONResponse(w, http.StatusOK, resp)
		return
	}

	groups := map[int][]models.Comment{}
	order := []int{}
	for i, label := range assignments {
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], comments[i])
	}
	for _, label := range order {
		resp.Clusters = append(resp.Clusters, models.ClusterGroup{
			Label:    label,
			Comments: groups[label],
		})
	}
	resp.Available = true

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// runClusterer isolates the pluggable clusterer: a panic inside an
// implementation must not take down the request.
func (h *ClusterHandler) runClusterer(texts []string, k int) (assignments []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("clusterer panicked")
		}
	}()
	assignments, err = h.clusterer.Cluster(texts, k)
	if err != nil {
		return nil, err
	}
	if len(assignments) != len(texts) {
		return nil, errors.New("clusterer returned wrong assignment count")
	}
	return assignments, nil
}
