// Package request holds parsing helpers shared by the HTTP handlers.
package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gamereviews-backend/internal/shared/apierr"
)

// PathInt parses a numeric path parameter. A non-numeric id is a
// malformed request, not a miss.
func PathInt(c *gin.Context, key string) (int, error) {
	id, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return 0, apierr.InvalidInput()
	}
	return id, nil
}

// PositiveQueryInt reads a pagination parameter, falling back to def
// when absent. Zero, negative and non-numeric values are rejected.
func PositiveQueryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apierr.InvalidInput()
	}
	return n, nil
}
