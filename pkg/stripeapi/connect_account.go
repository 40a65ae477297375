package stripeapi

import (
	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
)

const defaultAccountType = "custom"

type AccountService struct {
	session transport.Session
}

type AccountCreateParams struct {
	Email   string `validate:"required"`
	Country request.Opt[string]
	// Type defaults to "custom".
	Type request.Opt[string]
}

// Create makes a new connected account.
// https://stripe.com/docs/api#create_account
func (s *AccountService) Create(params AccountCreateParams) *Call[entity.Account] {
	desc, err := createAccount(params)
	return newCall(s.session, desc, err)
}

// Retrieve fetches a connected account. With accountID absent it returns the
// account that owns the API key.
// https://stripe.com/docs/api#retrieve_account
func (s *AccountService) Retrieve(accountID request.Opt[string]) *Call[entity.Account] {
	desc, err := retrieveAccount(accountID)
	return newCall(s.session, desc, err)
}

func createAccount(params AccountCreateParams) (request.Descriptor[entity.Account], error) {
	const op = "account.create"
	p := request.Params{
		"email": params.Email,
		"type":  params.Type.Or(defaultAccountType),
	}
	request.SetOpt(p, "country", params.Country)
	return request.Post[entity.Account](op, "accounts", p), checkParams(op, params)
}

func retrieveAccount(accountID request.Opt[string]) (request.Descriptor[entity.Account], error) {
	const op = "account.retrieve"
	id, ok := accountID.Get()
	if !ok {
		return request.Get[entity.Account](op, "accounts", nil), nil
	}
	return request.Get[entity.Account](op, request.JoinPath("accounts", id), nil), requireID(op, "accountID", id)
}
