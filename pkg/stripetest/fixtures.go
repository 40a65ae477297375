package stripetest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const fixtureCreated = 1507880000

func list(url string, data ...any) map[string]any {
	if data == nil {
		data = []any{}
	}
	return map[string]any{
		"object":   "list",
		"url":      url,
		"has_more": false,
		"data":     data,
	}
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func customer(id, email string) map[string]any {
	return map[string]any{
		"id":              id,
		"object":          "customer",
		"account_balance": 0,
		"created":         fixtureCreated,
		"currency":        "usd",
		"default_source":  nil,
		"delinquent":      false,
		"email":           nullable(email),
		"livemode":        false,
	}
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, customer("cus_new", r.Form.Get("email")))
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, customer(chi.URLParam(r, "id"), "jenny@example.com"))
}

func product(id string) map[string]any {
	return map[string]any{
		"id":          id,
		"object":      "product",
		"active":      true,
		"attributes":  []string{"size"},
		"caption":     "",
		"created":     fixtureCreated,
		"description": nil,
		"images":      []string{},
		"livemode":    false,
		"metadata":    map[string]string{},
		"name":        "T-shirt",
		"package_dimensions": map[string]any{
			"height": 1.0, "length": 10.0, "weight": 5.5, "width": 8.0,
		},
		"shippable": true,
		"skus": map[string]any{
			"object":      "list",
			"url":         "/v1/skus?product=" + id,
			"has_more":    false,
			"total_count": 1,
			"data": []any{map[string]any{
				"id":                 "sku_" + id,
				"object":             "sku",
				"active":             true,
				"attributes":         map[string]string{"size": "M"},
				"created":            fixtureCreated,
				"currency":           "usd",
				"image":              nil,
				"inventory":          map[string]any{"type": "infinite", "quantity": nil, "value": nil},
				"livemode":           false,
				"package_dimensions": nil,
				"price":              1500,
				"product":            id,
				"updated":            fixtureCreated,
			}},
		},
		"updated": fixtureCreated,
		"url":     nil,
	}
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, list("/v1/products", product("prod_1"), product("prod_2")))
}

func account(id, email string) map[string]any {
	return map[string]any{
		"id":      id,
		"object":  "account",
		"email":   nullable(email),
		"country": "US",
		"type":    "custom",
	}
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	acct := account("acct_new", r.Form.Get("email"))
	if c := r.Form.Get("country"); c != "" {
		acct["country"] = c
	}
	acct["type"] = r.Form.Get("type")
	writeJSON(w, http.StatusOK, acct)
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		id = "acct_self"
	}
	writeJSON(w, http.StatusOK, account(id, "owner@example.com"))
}

func bankAccount(id, accountID string) map[string]any {
	return map[string]any{
		"id":        id,
		"object":    "bank_account",
		"account":   accountID,
		"bank_name": "STRIPE TEST BANK",
		"country":   "US",
		"currency":  "usd",
		"last4":     "6789",
		"status":    "new",
	}
}

func (s *Server) createBankAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bankAccount("ba_new", chi.URLParam(r, "account_id")))
}

func (s *Server) getBankAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bankAccount(chi.URLParam(r, "id"), chi.URLParam(r, "account_id")))
}

func (s *Server) listBankAccounts(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")
	writeJSON(w, http.StatusOK, list("/v1/accounts/"+accountID+"/external_accounts", bankAccount("ba_1", accountID)))
}

func fee(id string) map[string]any {
	return map[string]any{
		"id":       id,
		"object":   "application_fee",
		"amount":   100,
		"currency": "usd",
		"refunded": false,
	}
}

func (s *Server) getFee(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fee(chi.URLParam(r, "id")))
}

func (s *Server) listFees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, list("/v1/application_fees", fee("fee_1"), fee("fee_2")))
}

func feeRefund(id, feeID string) map[string]any {
	return map[string]any{
		"id":     id,
		"object": "fee_refund",
		"fee":    feeID,
		"amount": 100,
	}
}

func (s *Server) createFeeRefund(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, feeRefund("fr_new", chi.URLParam(r, "fee_id")))
}

func (s *Server) getFeeRefund(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, feeRefund(chi.URLParam(r, "id"), chi.URLParam(r, "fee_id")))
}

func (s *Server) listFeeRefunds(w http.ResponseWriter, r *http.Request) {
	feeID := chi.URLParam(r, "fee_id")
	writeJSON(w, http.StatusOK, list("/v1/application_fees/"+feeID+"/refunds", feeRefund("fr_1", feeID)))
}
