// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateRoomRequest: title, admin_pin, code, create_pass
  - AddCommentRequest: author, content
  - TagCommentRequest: tag
  - SetHiddenRequest: hidden
  - SetClosedRequest: closed
  - SetFontScaleRequest: scale
  - SetFocusRequest: comment_id (null clears)
  - CastVoteRequest: comment_id, voter

# Response Types

Types for JSON responses:

  - CreateRoomResponse: code
  - SessionResponse: voter
  - RoomLinksResponse: participant, organizer, projector
  - CastVoteResponse: recorded, votes
  - HasVotedResponse: has_voted
  - FocusResponse: focused, comment
  - RotateResponse: rotated, comment_id
  - ClusterResponse: available, clusters
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Room: 6-digit code, title, focus pointer, PIN, closed flag, font scale
  - Comment: submission with vote counter, tag set, visibility flag
  - CommentView: Comment annotated with age and has_voted for a client
  - VoteRecord: one per (room_code, comment_id, voter)

Voter identifiers and admin PINs are never serialized to JSON.

# Constants

Rotation defaults:

	DefaultRotatePeriodSeconds = 8
	DefaultRotateTopN          = 20

Listing caps:

	ParticipantListLimit = 300
	OrganizerListLimit   = 400
*/
package models
