package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCanceled    = errors.New("request canceled")
	ErrNotEnqueued = errors.New("call could not be enqueued")
)

// APIError is a non-2xx response. The remote error payload is kept intact;
// this package does not interpret Stripe's error semantics.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Param      string
	Message    string
	Body       []byte
}

type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Param   string `json:"param"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *APIError) Error() string {
	kind := e.Code
	if kind == "" {
		kind = e.Type
	}
	return fmt.Sprintf("stripe api error [%s]: %s (status: %d)", kind, e.Message, e.StatusCode)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var resp apiErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.Type = resp.Error.Type
	apiErr.Code = resp.Error.Code
	apiErr.Param = resp.Error.Param
	apiErr.Message = resp.Error.Message
	return apiErr
}

// NetworkError means no response was obtained: connection failure, timeout
// or cancellation of the request context.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func IsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	ok := errors.As(err, &netErr)
	return netErr, ok
}
