package existence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gamereviews-backend/internal/shared/apierr"
)

// Target enumerates every (table, column) pair the API probes. Keeping
// the set closed means no caller-supplied identifier ever reaches SQL.
type Target int

const (
	UserByUsername Target = iota
	ReviewByID
	CommentByID
	CategoryBySlug
	// ReviewByCategory probes reviews.category rather than categories.slug:
	// a filter on a category with no reviews reports against the reviews
	// table, matching the published contract.
	ReviewByCategory
)

func (t Target) table() string {
	switch t {
	case UserByUsername:
		return "users"
	case ReviewByID, ReviewByCategory:
		return "reviews"
	case CommentByID:
		return "comments"
	case CategoryBySlug:
		return "categories"
	default:
		return ""
	}
}

func (t Target) column() string {
	switch t {
	case UserByUsername:
		return "username"
	case ReviewByID:
		return "review_id"
	case CommentByID:
		return "comment_id"
	case CategoryBySlug:
		return "slug"
	case ReviewByCategory:
		return "category"
	default:
		return ""
	}
}

// Prober is what services depend on; Checker is the pgx-backed
// implementation.
type Prober interface {
	// Check reports whether any row holds value in the target's column.
	Check(ctx context.Context, target Target, value any) (bool, error)
	// Exists is Check folded into the error taxonomy: a miss comes back
	// as NotFound, which is what lets handlers distinguish a malformed
	// id (400) from an absent one (404).
	Exists(ctx context.Context, target Target, value any) error
}

// Checker answers "does any row hold this value" for the enumerated targets.
type Checker struct {
	pool *pgxpool.Pool
}

func NewChecker(pool *pgxpool.Pool) *Checker {
	return &Checker{pool: pool}
}

func (c *Checker) Check(ctx context.Context, target Target, value any) (bool, error) {
	table, column := target.table(), target.column()
	if table == "" || column == "" {
		return false, apierr.Internal(fmt.Errorf("unknown existence target %d", target))
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, column)

	var found bool
	if err := c.pool.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, apierr.Internal(fmt.Errorf("existence check on %s.%s: %w", table, column, err))
	}
	return found, nil
}

func (c *Checker) Exists(ctx context.Context, target Target, value any) error {
	found, err := c.Check(ctx, target, value)
	if err != nil {
		return err
	}
	if !found {
		return apierr.NotFound(value, target.table())
	}
	return nil
}
