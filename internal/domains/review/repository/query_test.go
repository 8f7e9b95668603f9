package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamereviews-backend/internal/domains/review/model"
)

func TestBuildListQueryWithoutFilter(t *testing.T) {
	req := model.ListReviewsRequest{SortBy: "created_at", Order: "DESC", Page: 1, Limit: 10}

	query, args := buildListQuery(req)

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Contains(t, query, "COUNT(*) OVER() AS total_count")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, args)
}

func TestBuildListQueryWithCategory(t *testing.T) {
	category := "dexterity"
	req := model.ListReviewsRequest{
		SortBy: "votes", Order: "ASC", Category: &category, Page: 3, Limit: 5,
	}

	query, args := buildListQuery(req)

	assert.Contains(t, query, "WHERE r.category = $1")
	assert.Contains(t, query, "ORDER BY votes ASC")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3")

	require.Len(t, args, 3)
	assert.Equal(t, "dexterity", args[0])
	assert.Equal(t, 5, args[1])
	assert.Equal(t, 10, args[2])
}

func TestBuildListQueryNeverInterpolatesFilterValues(t *testing.T) {
	// The category value must stay a bind parameter whatever it contains.
	category := "'; DROP TABLE reviews; --"
	req := model.ListReviewsRequest{
		SortBy: "created_at", Order: "DESC", Category: &category, Page: 1, Limit: 10,
	}

	query, args := buildListQuery(req)

	assert.NotContains(t, query, "DROP TABLE")
	assert.Equal(t, category, args[0])
}
