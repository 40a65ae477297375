package transport

import (
	"context"
	"errors"

	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
)

// ErrorCategory separates "server rejected the request" from "no response"
// and from "response did not match the schema".
type ErrorCategory string

const (
	CategoryNetwork         ErrorCategory = "NETWORK"
	CategoryAPI             ErrorCategory = "API"
	CategoryDecode          ErrorCategory = "DECODE"
	CategoryInvalidArgument ErrorCategory = "INVALID_ARGUMENT"
	CategoryCanceled        ErrorCategory = "CANCELED"
	CategoryUnknown         ErrorCategory = "UNKNOWN"
)

// Categorize determines which class of failure err belongs to.
func Categorize(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrCanceled) || errors.Is(err, context.Canceled) {
		return CategoryCanceled
	}

	if _, ok := entity.IsDecodeError(err); ok {
		return CategoryDecode
	}

	if _, ok := request.IsArgumentError(err); ok {
		return CategoryInvalidArgument
	}

	if _, ok := IsAPIError(err); ok {
		return CategoryAPI
	}

	if _, ok := IsNetworkError(err); ok {
		return CategoryNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrNotEnqueued) {
		return CategoryNetwork
	}

	return CategoryUnknown
}

// StatusCode returns the HTTP status of an API error, or 0 when no response
// was obtained.
func StatusCode(err error) int {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.StatusCode
	}
	return 0
}
