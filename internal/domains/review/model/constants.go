package model

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
	DefaultPage   = 1
	DefaultLimit  = 10

	// DefaultReviewImgURL is stamped onto reviews created without an
	// image of their own.
	DefaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"
)

// sortColumns is the ORDER BY allow-list; anything else in sort_by is
// rejected before query assembly.
var sortColumns = map[string]bool{
	"owner":          true,
	"title":          true,
	"review_id":      true,
	"category":       true,
	"review_img_url": true,
	"created_at":     true,
	"votes":          true,
	"comment_count":  true,
}

func ValidSortColumn(col string) bool { return sortColumns[col] }

// ValidOrder is case sensitive; "asc" is not an order.
func ValidOrder(order string) bool { return order == "ASC" || order == "DESC" }
