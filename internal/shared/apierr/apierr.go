package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Kind classifies every failure the API can answer with.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindInvalidQuery
	KindNotFound
	KindDuplicateKey
	KindRouteNotFound
)

// Error is the single error type handlers and services trade in.
// Every failure surfaced to a client is one of these; anything else
// is treated as internal and answered with a 500.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput covers malformed path params, body values and page/limit
// queries. Always 400.
func InvalidInput() *Error {
	return &Error{Kind: KindInvalidInput, Msg: "Invalid input"}
}

// InvalidQuery covers sort_by/order values outside their allow-lists.
// The contract answers 404 here, not 400. Historical, but load-bearing:
// clients test against it.
func InvalidQuery() *Error {
	return &Error{Kind: KindInvalidQuery, Msg: "Input query not found"}
}

// NotFound reports a well-formed value with no matching row.
func NotFound(value any, table string) *Error {
	return &Error{
		Kind: KindNotFound,
		Msg:  fmt.Sprintf("input '%v' not found in '%s' database", value, table),
	}
}

// DuplicateUsername reports a username uniqueness violation on POST /api/users.
func DuplicateUsername() *Error {
	return &Error{Kind: KindDuplicateKey, Msg: "Username already exists"}
}

// RouteNotFound answers requests that match no route.
func RouteNotFound() *Error {
	return &Error{Kind: KindRouteNotFound, Msg: "Path Not Found"}
}

// Internal wraps an unexpected failure. The wrapped error is logged by
// Respond but never leaks into the response body.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "Internal Server Error", Err: err}
}

// status maps a kind to its HTTP status code.
func (k Kind) status() int {
	switch k {
	case KindInvalidInput, KindDuplicateKey:
		return http.StatusBadRequest
	case KindInvalidQuery, KindNotFound, KindRouteNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond is the single place errors become HTTP responses. All bodies
// are the flat {"msg": "..."} shape.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}

	if apiErr.Kind == KindInternal {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")
	}

	c.JSON(apiErr.Kind.status(), gin.H{"msg": apiErr.Msg})
}
