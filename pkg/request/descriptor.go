package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
)

// Descriptor is an inert description of one API call whose successful
// response decodes into T. Building one never touches the network.
type Descriptor[T any] struct {
	// Operation names the call for logs and metrics, e.g. "customer.retrieve".
	Operation string
	Method    string
	Path      string
	Params    Params
}

func Get[T any](operation, path string, params Params) Descriptor[T] {
	return Descriptor[T]{Operation: operation, Method: http.MethodGet, Path: path, Params: params}
}

func Post[T any](operation, path string, params Params) Descriptor[T] {
	return Descriptor[T]{Operation: operation, Method: http.MethodPost, Path: path, Params: params}
}

// Request drops the response type. The bag is copied so the transport cannot
// mutate the descriptor.
func (d Descriptor[T]) Request() Request {
	return Request{
		Operation: d.Operation,
		Method:    d.Method,
		Path:      d.Path,
		Params:    d.Params.Clone(),
	}
}

// Decode applies T's decode rules to a successful response body.
func (d Descriptor[T]) Decode(body []byte) (*T, error) {
	return entity.Decode[T](body)
}

// Request is the untyped form of a Descriptor consumed by a transport.
type Request struct {
	Operation      string
	Method         string
	Path           string
	Params         Params
	IdempotencyKey string

	// Decode, when set, is run by the transport on a successful body. Its
	// error becomes the request's error, so logs and metrics see the final
	// outcome of the call.
	Decode func(body []byte) error
}

// HasBody reports whether params travel in a form body rather than the query.
func (r Request) HasBody() bool {
	return r.Method == http.MethodPost
}

// JoinPath builds a relative path from segments, escaping each one.
func JoinPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

// ListParams are the cursor pagination arguments shared by list endpoints.
type ListParams struct {
	Limit         Opt[int64]
	StartingAfter Opt[string]
	EndingBefore  Opt[string]
}

func (lp ListParams) Apply(p Params) {
	SetOpt(p, "limit", lp.Limit)
	SetOpt(p, "starting_after", lp.StartingAfter)
	SetOpt(p, "ending_before", lp.EndingBefore)
}
