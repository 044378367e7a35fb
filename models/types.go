// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Rotation defaults
const (
	DefaultRotatePeriodSeconds = 8
	DefaultRotateTopN          = 20
)

// Listing caps. A full page is read eagerly on every poll, so listings
// are bounded to a few hundred rows.
const (
	ParticipantListLimit = 300
	OrganizerListLimit   = 400
)

// Request types

type CreateRoomRequest struct {
	Title      string `json:"title"`
	AdminPin   string `json:"admin_pin"`
	Code       string `json:"code"`
	CreatePass string `json:"create_pass"`
}

type AddCommentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type TagCommentRequest struct {
	Tag string `json:"tag"`
}

type SetHiddenRequest struct {
	Hidden bool `json:"hidden"`
}

type SetClosedRequest struct {
	Closed bool `json:"closed"`
}

type SetFontScaleRequest struct {
	Scale float64 `json:"scale"`
}

// A null comment_id clears the focus.
type SetFocusRequest struct {
	CommentID *int64 `json:"comment_id"`
}

type CastVoteRequest struct {
	CommentID int64  `json:"comment_id"`
	Voter     string `json:"voter"`
}

// Response types

type CreateRoomResponse struct {
	Code string `json:"code"`
}

type SessionResponse struct {
	Voter string `json:"voter"`
}

type RoomLinksResponse struct {
	Participant string `json:"participant"`
	Organizer   string `json:"organizer"`
	Projector   string `json:"projector"`
}

type CastVoteResponse struct {
	Recorded bool `json:"recorded"`
	Votes    int  `json:"votes"`
}

type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

type FocusResponse struct {
	Focused bool     `json:"focused"`
	Comment *Comment `json:"comment,omitempty"`
}

type RotateResponse struct {
	Rotated   bool  `json:"rotated"`
	CommentID int64 `json:"comment_id,omitempty"`
}

type ClusterGroup struct {
	Label    int       `json:"label"`
	Comments []Comment `json:"comments"`
}

type ClusterResponse struct {
	Available bool           `json:"available"`
	Clusters  []ClusterGroup `json:"clusters"`
}

// Domain types

type Room struct {
	Code           string    `json:"code"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	FocusCommentID *int64    `json:"focus_comment_id,omitempty"`
	AdminPin       string    `json:"-"` // Never expose in JSON
	IsClosed       bool      `json:"is_closed"`
	FontScale      float64   `json:"font_scale"`
}

type Comment struct {
	ID        int64     `json:"id"`
	RoomCode  string    `json:"room_code"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Votes     int       `json:"votes"`
	Tags      []string  `json:"tags"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is a Comment annotated for a polling client.
type CommentView struct {
	Comment
	Age      string `json:"age"`
	HasVoted bool   `json:"has_voted"`
}

type VoteRecord struct {
	RoomCode  string    `json:"room_code"`
	CommentID int64     `json:"comment_id"`
	Voter     string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
