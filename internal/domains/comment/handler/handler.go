package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamereviews-backend/internal/domains/comment/model"
	"gamereviews-backend/internal/domains/comment/service"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/request"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments handles GET /api/reviews/:review_id/comments.
func (h *CommentHandler) ListComments(c *gin.Context) {
	reviewID, err := request.PathInt(c, "review_id")
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	page, err := request.PositiveQueryInt(c, "p", defaultPage)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	limit, err := request.PositiveQueryInt(c, "limit", defaultLimit)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), reviewID, page, limit)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/reviews/:review_id/comments.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	reviewID, err := request.PathInt(c, "review_id")
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}
	if err := req.Validate(); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), reviewID, req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment handles PATCH /api/comments/:comment_id. An absent body
// is tolerated so a miss still reports the absent comment.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := request.PathInt(c, "comment_id")
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	// EOF means no body at all, which is tolerated. Covers chunked
	// requests where ContentLength is unknown.
	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := request.PathInt(c, "comment_id")
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID); err != nil {
		apierr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
