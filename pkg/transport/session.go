package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/google/uuid"
)

const userAgent = "stripeapi-go/1.0"

// Session executes requests against the API. Do blocks; Send schedules the
// call and returns its handle, or nil when the call could not be enqueued.
// Implementations run req.Decode on a 2xx body and report its error as the
// request's error.
type Session interface {
	Do(ctx context.Context, req request.Request) ([]byte, error)
	Send(ctx context.Context, req request.Request, done func(body []byte, err error)) *Task
}

type HTTPSession struct {
	baseURL    string
	apiKey     string
	apiVersion string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics

	mu       sync.Mutex
	closed   bool
	inFlight sync.WaitGroup
}

type Option func(*HTTPSession)

// WithHTTPClient replaces the default client; its Timeout wins over Config.Timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSession) { s.httpClient = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *HTTPSession) { s.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(s *HTTPSession) { s.metrics = m }
}

func NewHTTPSession(cfg Config, opts ...Option) *HTTPSession {
	s := &HTTPSession{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSession) Do(ctx context.Context, req request.Request) ([]byte, error) {
	start := time.Now()
	body, status, err := s.roundTrip(ctx, req)
	if err == nil && req.Decode != nil {
		err = req.Decode(body)
	}
	elapsed := time.Since(start)

	s.metrics.observe(req.Operation, req.Method, err, elapsed)
	s.logger.DebugContext(ctx, "stripe request finished",
		"operation", req.Operation,
		"method", req.Method,
		"path", req.Path,
		"status", status,
		"duration", elapsed,
		"error", err,
	)

	return body, err
}

func (s *HTTPSession) roundTrip(ctx context.Context, req request.Request) ([]byte, int, error) {
	fullURL := fmt.Sprintf("%s/%s", s.baseURL, strings.TrimLeft(req.Path, "/"))

	var bodyReader io.Reader
	if req.HasBody() {
		bodyReader = strings.NewReader(req.Params.Encode())
	} else if encoded := req.Params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if s.apiVersion != "" {
		httpReq.Header.Set("Stripe-Version", s.apiVersion)
	}

	if req.HasBody() {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		idempotencyKey := req.IdempotencyKey
		if idempotencyKey == "" {
			idempotencyKey = uuid.NewString()
		}
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, &NetworkError{Op: "error making request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Op: "error reading response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, newAPIError(resp.StatusCode, body)
	}

	return body, resp.StatusCode, nil
}

// Send runs req on its own goroutine and reports the outcome through done.
// It returns nil after Close.
func (s *HTTPSession) Send(ctx context.Context, req request.Request, done func(body []byte, err error)) *Task {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.inFlight.Add(1)
	s.mu.Unlock()

	task := newTask(ctx)
	go func() {
		defer s.inFlight.Done()

		body, err := s.Do(task.ctx, req)
		task.complete(func(canceled bool) {
			if canceled {
				done(nil, ErrCanceled)
				return
			}
			done(body, err)
		})
	}()

	return task
}

// Close stops accepting new calls and waits for in-flight ones to finish.
func (s *HTTPSession) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("session already closed")
	}
	s.closed = true
	s.mu.Unlock()

	s.inFlight.Wait()
	return nil
}
