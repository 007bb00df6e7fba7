package graphql

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyEndpoint   = errors.New("graphql: endpoint is required")
	ErrInvalidEndpoint = errors.New("graphql: endpoint is not a valid absolute URL")
	ErrRequestFailed   = errors.New("graphql: request failed")
	ErrDecodeResponse  = errors.New("graphql: failed to decode response")
	ErrEmptyData       = errors.New("graphql: response has no data")
)

// HTTPError is returned when the endpoint answers with a non-200 status.
type HTTPError struct {
	Operation string
	Code      int
	Message   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("graphql: %s: unexpected status %d: %s", e.Operation, e.Code, e.Message)
}

// Location points into the query text.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ResponseError is a single entry of a GraphQL "errors" array.
type ResponseError struct {
	Message   string     `json:"message"`
	Path      []any      `json:"path,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

// QueryError is returned when the response carries GraphQL errors.
type QueryError struct {
	Operation string
	Errors    []ResponseError
}

func (e *QueryError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, re := range e.Errors {
		msgs[i] = re.Message
	}
	return fmt.Sprintf("graphql: %s: %s", e.Operation, strings.Join(msgs, "; "))
}
