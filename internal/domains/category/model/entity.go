package model

// Category is a board-game category. The slug doubles as the primary key
// and as the foreign-key target for reviews.
type Category struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
