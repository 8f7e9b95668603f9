package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamereviews-backend/internal/domains/category/model"
	"gamereviews-backend/internal/domains/category/service"
	"gamereviews-backend/internal/shared/apierr"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories handles GET /api/categories.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory handles POST /api/categories.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}
	if err := req.Validate(); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}
