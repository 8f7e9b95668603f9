package model

import "time"

// Review is the stored row. DesignerName and body are only surfaced on
// the detail endpoint.
type Review struct {
	ReviewID     int       `json:"review_id"`
	Title        string    `json:"title"`
	ReviewBody   string    `json:"review_body"`
	Designer     string    `json:"designer"`
	ReviewImgURL string    `json:"review_img_url"`
	Votes        int       `json:"votes"`
	Category     string    `json:"category"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewDetail is a single review plus its comment tally.
type ReviewDetail struct {
	ReviewID     int       `json:"review_id"`
	Title        string    `json:"title"`
	ReviewBody   string    `json:"review_body"`
	Designer     string    `json:"designer"`
	ReviewImgURL string    `json:"review_img_url"`
	Votes        int       `json:"votes"`
	Category     string    `json:"category"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	CommentCount int       `json:"comment_count"`
}

// ReviewSummary is a listing row. The body and designer are elided and
// every row carries the unpaginated match total.
type ReviewSummary struct {
	Owner        string    `json:"owner"`
	Title        string    `json:"title"`
	ReviewID     int       `json:"review_id"`
	Category     string    `json:"category"`
	ReviewImgURL string    `json:"review_img_url"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
	TotalCount   int       `json:"total_count"`
}
