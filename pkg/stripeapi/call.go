package stripeapi

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
)

// Call pairs a built descriptor with the session that will execute it.
// Nothing is sent until Do or Send is called.
type Call[T any] struct {
	session        transport.Session
	desc           request.Descriptor[T]
	err            error
	idempotencyKey string
}

func newCall[T any](session transport.Session, desc request.Descriptor[T], err error) *Call[T] {
	return &Call[T]{session: session, desc: desc, err: err}
}

// Descriptor returns the request this call will send.
func (c *Call[T]) Descriptor() request.Descriptor[T] {
	return c.desc
}

// Err returns the argument error found while building the call, if any.
func (c *Call[T]) Err() error {
	return c.err
}

// IdempotencyKey pins the Idempotency-Key header of a POST. Without it the
// transport generates one per attempt.
func (c *Call[T]) IdempotencyKey(key string) *Call[T] {
	c.idempotencyKey = key
	return c
}

// pending holds the result of one execution. The session runs the Decode
// hook on its own goroutine before handing back the body.
type pending[T any] struct {
	call    *Call[T]
	value   *T
	decoded bool
}

func (c *Call[T]) prepare() (request.Request, *pending[T]) {
	p := &pending[T]{call: c}
	req := c.desc.Request()
	req.IdempotencyKey = c.idempotencyKey
	req.Decode = p.decode
	return req, p
}

func (p *pending[T]) decode(body []byte) error {
	p.decoded = true
	v, err := p.call.decode(body)
	p.value = v
	return err
}

// result returns the decoded value, decoding body itself when the session
// did not run the hook.
func (p *pending[T]) result(body []byte) (*T, error) {
	if p.decoded {
		return p.value, nil
	}
	return p.call.decode(body)
}

// Do sends the call and blocks until the response is decoded.
func (c *Call[T]) Do(ctx context.Context) (*T, error) {
	if c.err != nil {
		return nil, c.err
	}

	req, p := c.prepare()
	body, err := c.session.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.result(body)
}

// Send schedules the call on the session and returns its handle. handler runs
// exactly once on the session's goroutine. When the call cannot be enqueued,
// Send returns nil after running handler with the reason.
func (c *Call[T]) Send(ctx context.Context, handler func(*T, error)) *transport.Task {
	if c.err != nil {
		handler(nil, c.err)
		return nil
	}

	req, p := c.prepare()
	task := c.session.Send(ctx, req, func(body []byte, err error) {
		if err != nil {
			handler(nil, err)
			return
		}
		handler(p.result(body))
	})
	if task == nil {
		handler(nil, fmt.Errorf("%s: %w", c.desc.Operation, transport.ErrNotEnqueued))
	}
	return task
}

func (c *Call[T]) decode(body []byte) (*T, error) {
	v, err := c.desc.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.desc.Operation, err)
	}
	return v, nil
}
