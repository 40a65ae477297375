// Package stripetest runs an in-process fake of the Stripe endpoints this
// module binds, for tests and dry runs.
package stripetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Recorded is one request the fake received.
type Recorded struct {
	Method string
	Path   string
	Form   url.Values
	Header http.Header
}

// Server is a fake Stripe API mounted under /v1.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Recorded
	overrides map[string]http.HandlerFunc
}

func NewServer() *Server {
	s := &Server{overrides: make(map[string]http.HandlerFunc)}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Use(recovery)
		r.Use(s.record)
		r.Use(authMiddleware)
		r.Use(s.override)

		r.Post("/customers", s.createCustomer)
		r.Get("/customers/{id}", s.getCustomer)

		r.Get("/products", s.listProducts)

		r.Post("/accounts", s.createAccount)
		r.Get("/accounts", s.getAccount)
		r.Get("/accounts/{id}", s.getAccount)

		r.Post("/accounts/{account_id}/external_accounts", s.createBankAccount)
		r.Get("/accounts/{account_id}/external_accounts", s.listBankAccounts)
		r.Get("/accounts/{account_id}/external_accounts/{id}", s.getBankAccount)

		r.Get("/application_fees", s.listFees)
		r.Get("/application_fees/{id}", s.getFee)

		r.Post("/application_fees/{fee_id}/refunds", s.createFeeRefund)
		r.Get("/application_fees/{fee_id}/refunds", s.listFeeRefunds)
		r.Get("/application_fees/{fee_id}/refunds/{id}", s.getFeeRefund)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the value to put in transport.Config.BaseURL.
func (s *Server) BaseURL() string {
	return s.URL + "/v1"
}

// Handle replaces the built-in response for method and path (relative to /v1).
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" /v1/"+strings.TrimLeft(path, "/")] = h
}

// Respond makes method and path answer with a fixed status and body.
func (s *Server) Respond(method, path string, status int, body string) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

// LastRequest returns the most recent request, or the zero value.
func (s *Server) LastRequest() Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Recorded{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			StripeError(w, http.StatusBadRequest, "invalid_request_error", "parameter_invalid", err.Error())
			return
		}

		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Form:   r.Form,
			Header: r.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) override(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		h, ok := s.overrides[r.Method+" "+r.URL.EscapedPath()]
		s.mu.Unlock()

		if ok {
			h(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// StripeError writes an error body in Stripe's format.
func StripeError(w http.ResponseWriter, status int, errType, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"type":    errType,
			"code":    code,
			"message": message,
		},
	})
}
