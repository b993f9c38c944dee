// Package apperror provides a structured way to handle application errors
// with specific codes, HTTP status mapping and conversion from the
// sentinel errors of the algorithm packages.
package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/algokit/bellmanford"
	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/flow"
	"github.com/katalvlaran/algokit/matrix"
	"github.com/katalvlaran/algokit/prim_kruskal"
)

// ErrorCode represents a specific application error code.
type ErrorCode string

const (
	// Validation
	CodeInvalidGraph     ErrorCode = "INVALID_GRAPH"
	CodeInvalidVertex    ErrorCode = "INVALID_VERTEX"
	CodeInvalidWeight    ErrorCode = "INVALID_WEIGHT"
	CodeNegativeWeight   ErrorCode = "NEGATIVE_WEIGHT"
	CodeInvalidAlgorithm ErrorCode = "INVALID_ALGORITHM"
	CodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	CodeGraphTooLarge    ErrorCode = "GRAPH_TOO_LARGE"
	CodeNilInput         ErrorCode = "NIL_INPUT"

	// Connectivity
	CodeNoPath            ErrorCode = "NO_PATH"
	CodeDisconnectedGraph ErrorCode = "DISCONNECTED_GRAPH"

	// Algorithms
	CodeNegativeCycle ErrorCode = "NEGATIVE_CYCLE"
	CodeCycleDetected ErrorCode = "CYCLE_DETECTED"
	CodeNoSecondBest  ErrorCode = "NO_SECOND_BEST"
	CodeTimeout       ErrorCode = "TIMEOUT"
	CodeCanceled      ErrorCode = "CANCELED"

	// General
	CodeInternal    ErrorCode = "INTERNAL_ERROR"
	CodeNotFound    ErrorCode = "NOT_FOUND"
	CodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Error carries a code, a human-readable message, the offending request
// field if known, structured details and the underlying cause.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}

	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the code to an HTTP status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidGraph, CodeInvalidVertex, CodeInvalidWeight, CodeNegativeWeight,
		CodeInvalidAlgorithm, CodeInvalidArgument, CodeNilInput:
		return http.StatusBadRequest

	case CodeGraphTooLarge:
		return http.StatusRequestEntityTooLarge

	case CodeNoPath, CodeDisconnectedGraph, CodeNegativeCycle, CodeCycleDetected, CodeNoSecondBest:
		return http.StatusUnprocessableEntity

	case CodeNotFound:
		return http.StatusNotFound

	case CodeTimeout:
		return http.StatusGatewayTimeout

	case CodeCanceled:
		return 499 // client closed request

	case CodeRateLimited:
		return http.StatusTooManyRequests

	default:
		return http.StatusInternalServerError
	}
}

// New creates an application error.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
}

// NewWithField creates an application error bound to a request field.
func NewWithField(code ErrorCode, message, field string) *Error {
	e := New(code, message)
	e.Field = field

	return e
}

// Wrap creates an application error around cause.
func Wrap(cause error, code ErrorCode, message string) *Error {
	e := New(code, message)
	e.Cause = cause

	return e
}

// WithDetails adds a detail entry and returns e.
func (e *Error) WithDetails(key string, value any) *Error {
	e.Details[key] = value

	return e
}

// WithField sets the field and returns e.
func (e *Error) WithField(field string) *Error {
	e.Field = field

	return e
}

// Is reports whether err is an application error with the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}

	return false
}

// Code extracts the ErrorCode, CodeInternal for foreign errors.
func Code(err error) ErrorCode {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// sentinelCodes maps library sentinels to codes. Checked in order.
var sentinelCodes = []struct {
	err  error
	code ErrorCode
}{
	{context.DeadlineExceeded, CodeTimeout},
	{context.Canceled, CodeCanceled},

	{core.ErrVertexOutOfRange, CodeInvalidVertex},
	{core.ErrBadWeight, CodeInvalidWeight},
	{core.ErrLoopNotAllowed, CodeInvalidGraph},
	{core.ErrMultiEdgeNotAllowed, CodeInvalidGraph},

	{dijkstra.ErrNilGraph, CodeNilInput},
	{dijkstra.ErrNoSource, CodeInvalidVertex},
	{dijkstra.ErrVertexNotFound, CodeInvalidVertex},
	{dijkstra.ErrUnweightedGraph, CodeInvalidGraph},
	{dijkstra.ErrNegativeWeight, CodeNegativeWeight},
	{dijkstra.ErrBadMaxDistance, CodeInvalidArgument},
	{dijkstra.ErrBadInfThreshold, CodeInvalidArgument},
	{dijkstra.ErrNoPath, CodeNoPath},

	{bellmanford.ErrNilGraph, CodeNilInput},
	{bellmanford.ErrNoSource, CodeInvalidVertex},
	{bellmanford.ErrVertexNotFound, CodeInvalidVertex},
	{bellmanford.ErrNegativeCycle, CodeNegativeCycle},
	{bellmanford.ErrNegativeCycleAffected, CodeNegativeCycle},
	{bellmanford.ErrUnreachable, CodeNoPath},
	{bellmanford.ErrNoNegativeCycle, CodeNotFound},

	{matrix.ErrNilMatrix, CodeNilInput},
	{matrix.ErrNilGraph, CodeNilInput},
	{matrix.ErrBadShape, CodeInvalidArgument},
	{matrix.ErrOutOfRange, CodeInvalidVertex},
	{matrix.ErrNaN, CodeInvalidWeight},
	{matrix.ErrNegativeCycle, CodeNegativeCycle},
	{matrix.ErrNoPath, CodeNoPath},

	{flow.ErrGraphNil, CodeNilInput},
	{flow.ErrSourceNotFound, CodeInvalidVertex},
	{flow.ErrSinkNotFound, CodeInvalidVertex},
	{flow.ErrSourceIsSink, CodeInvalidArgument},
	{flow.ErrNegativeCapacity, CodeNegativeWeight},

	{prim_kruskal.ErrInvalidGraph, CodeInvalidGraph},
	{prim_kruskal.ErrBadRoot, CodeInvalidVertex},
	{prim_kruskal.ErrDisconnected, CodeDisconnectedGraph},
	{prim_kruskal.ErrUnknownMethod, CodeInvalidAlgorithm},
	{prim_kruskal.ErrNoSecondBest, CodeNoSecondBest},

	{bfs.ErrGraphNil, CodeNilInput},
	{bfs.ErrStartVertexNotFound, CodeInvalidVertex},
	{bfs.ErrOptionViolation, CodeInvalidArgument},
	{bfs.ErrNoPath, CodeNoPath},

	{dfs.ErrGraphNil, CodeNilInput},
	{dfs.ErrStartVertexNotFound, CodeInvalidVertex},
	{dfs.ErrCycleDetected, CodeCycleDetected},
	{dfs.ErrNotDirected, CodeInvalidGraph},
}

// FromAlgorithm converts an error returned by an algorithm package into an
// *Error. Application errors pass through unchanged; unknown errors become
// CodeInternal. nil stays nil.
func FromAlgorithm(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return Wrap(err, s.code, err.Error())
		}
	}

	return Wrap(err, CodeInternal, err.Error())
}

// Predefined errors for common scenarios.
var (
	ErrNilGraph    = New(CodeNilInput, "graph is nil")
	ErrNoPath      = New(CodeNoPath, "no path from source to target")
	ErrTimeout     = New(CodeTimeout, "operation timed out")
	ErrRateLimited = New(CodeRateLimited, "rate limit exceeded")
)
