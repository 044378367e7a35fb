// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ARS Canvas API server.

ARS Canvas is a live audience-interaction service: participants submit
short comments into a shared room, upvote them, and an organizer curates,
tags, hides, and focuses a comment for projection. All three roles share
one data set through periodic polling - there is no push channel.

# Starting the Server

The server runs on SQLite out of the box:

	ARS_CREATE_PASS=secret go run main.go

Or against PostgreSQL:

	ARS_CREATE_PASS=secret go run main.go -t postgres -d "postgres://..."

# Configuration

Required settings:

  - ARS_CREATE_PASS (-create-pass): Room creation passphrase

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: file:ars.sqlite)
  - ARS_BASE_URL (-base-url): Public base URL for share links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: Room/comment/vote consistency core
  - handlers: HTTP request handlers (rooms, comments, voting, projector, clusters)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Passphrase and PIN checks, voter identity minting
  - cluster: Best-effort comment clustering
  - db: Schema creation and backend selection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
