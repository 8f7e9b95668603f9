package model

import "time"

// Comment is the stored row, surfaced whole on create and update.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	ReviewID  int       `json:"review_id"`
}

// CommentSummary is a listing row; the parent review is implied by the
// route so review_id is elided.
type CommentSummary struct {
	CommentID int       `json:"comment_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
}
