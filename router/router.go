// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ars-canvas/cliparse"
	"github.com/danielhkuo/ars-canvas/cluster"
	"github.com/danielhkuo/ars-canvas/handlers"
	"github.com/danielhkuo/ars-canvas/middleware"
	"github.com/danielhkuo/ars-canvas/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db, cfg.DatabaseType)

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(st, cfg)
	commentHandler := handlers.NewCommentHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)
	projectorHandler := handlers.NewProjectorHandler(st, cfg)
	clusterHandler := handlers.NewClusterHandler(st, cfg, cluster.NewTFIDF())

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voter session minting
	mux.HandleFunc("POST /session", middleware.WithLogging(votingHandler.NewSession))

	// Room lifecycle (creation is passphrase-gated, moderation is PIN-gated)
	mux.HandleFunc("POST /rooms", middleware.WithLogging(roomHandler.CreateRoom))
	mux.HandleFunc("GET /rooms/{code}", middleware.WithLogging(roomHandler.GetRoom))
	mux.HandleFunc("GET /rooms/{code}/links", middleware.WithLogging(roomHandler.GetLinks))
	mux.HandleFunc("POST /rooms/{code}/close", middleware.WithLogging(roomHandler.SetClosed))
	mux.HandleFunc("POST /rooms/{code}/font-scale", middleware.WithLogging(roomHandler.SetFontScale))

	// Comments (participant submission, shared listing, moderation)
	mux.HandleFunc("POST /rooms/{code}/comments", middleware.WithLogging(commentHandler.AddComment))
	mux.HandleFunc("GET /rooms/{code}/comments", middleware.WithLogging(commentHandler.ListComments))
	mux.HandleFunc("POST /comments/{id}/tags", middleware.WithLogging(commentHandler.TagComment))
	mux.HandleFunc("POST /comments/{id}/hidden", middleware.WithLogging(commentHandler.SetHidden))

	// Voting
	mux.HandleFunc("POST /rooms/{code}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /rooms/{code}/votes/{id}", middleware.WithLogging(votingHandler.HasVoted))

	// Focus & rotation (projector)
	mux.HandleFunc("GET /rooms/{code}/focus", middleware.WithLogging(projectorHandler.GetFocus))
	mux.HandleFunc("POST /rooms/{code}/focus", middleware.WithLogging(projectorHandler.SetFocus))
	mux.HandleFunc("POST /rooms/{code}/rotate", middleware.WithLogging(projectorHandler.Rotate))

	// Best-effort clustering
	mux.HandleFunc("GET /rooms/{code}/clusters", middleware.WithLogging(clusterHandler.GetClusters))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ars-canvas API v1"))
	})

	return mux
}
