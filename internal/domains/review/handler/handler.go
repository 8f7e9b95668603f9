package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamereviews-backend/internal/domains/review/model"
	"gamereviews-backend/internal/domains/review/service"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/request"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListReviews handles GET /api/reviews with sorting, category filtering
// and pagination.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	req := model.ListReviewsRequest{
		SortBy: c.DefaultQuery("sort_by", model.DefaultSortBy),
		Order:  c.DefaultQuery("order", model.DefaultOrder),
	}
	if category, ok := c.GetQuery("category"); ok {
		req.Category = &category
	}

	var err error
	if req.Page, err = request.PositiveQueryInt(c, "p", model.DefaultPage); err != nil {
		apierr.Respond(c, err)
		return
	}
	if req.Limit, err = request.PositiveQueryInt(c, "limit", model.DefaultLimit); err != nil {
		apierr.Respond(c, err)
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetReview handles GET /api/reviews/:review_id.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := request.PathInt(c, "review_id")
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}
	if err := req.Validate(); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// UpdateReview handles PATCH /api/reviews/:review_id. An empty body is
// a no-op that still returns the stored review; the response never
// includes the comment tally.
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, err := request.PathInt(c, "review_id")
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	// EOF means no body at all, which is tolerated. Covers chunked
	// requests where ContentLength is unknown.
	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), id, req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// DeleteReview handles DELETE /api/reviews/:review_id. The review's
// comments go with it.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := request.PathInt(c, "review_id")
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		apierr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
