package stripeapi

import (
	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
)

type BankAccountService struct {
	session transport.Session
}

// BankAccountCreateParams describes a new external bank account. The three
// required fields travel nested under external_account; the rest are flat.
type BankAccountCreateParams struct {
	AccountNumber string `validate:"required"`
	Country       string `validate:"required"`
	Currency      string `validate:"required"`

	AccountHolderName  request.Opt[string]
	AccountHolderType  request.Opt[string]
	RoutingNumber      request.Opt[string]
	DefaultForCurrency request.Opt[bool]
	Metadata           request.Opt[map[string]string]
}

// Create attaches a bank account to a connected account.
// https://stripe.com/docs/api#account_create_bank_account
func (s *BankAccountService) Create(accountID string, params BankAccountCreateParams) *Call[entity.BankAccount] {
	desc, err := createBankAccount(accountID, params)
	return newCall(s.session, desc, err)
}

// https://stripe.com/docs/api#account_retrieve_bank_account
func (s *BankAccountService) Retrieve(accountID, bankAccountID string) *Call[entity.BankAccount] {
	desc, err := retrieveBankAccount(accountID, bankAccountID)
	return newCall(s.session, desc, err)
}

// https://stripe.com/docs/api#account_list_bank_accounts
func (s *BankAccountService) All(accountID string, list request.ListParams) *Call[entity.ListResponse[entity.BankAccount]] {
	desc, err := listBankAccounts(accountID, list)
	return newCall(s.session, desc, err)
}

func createBankAccount(accountID string, params BankAccountCreateParams) (request.Descriptor[entity.BankAccount], error) {
	const op = "bank_account.create"
	p := request.Params{
		"external_account": request.Params{
			"account_number": params.AccountNumber,
			"country":        params.Country,
			"currency":       params.Currency,
		},
	}
	request.SetOpt(p, "account_holder_name", params.AccountHolderName)
	request.SetOpt(p, "account_holder_type", params.AccountHolderType)
	request.SetOpt(p, "routing_number", params.RoutingNumber)
	request.SetOpt(p, "default_for_currency", params.DefaultForCurrency)
	request.SetOpt(p, "metadata", params.Metadata)

	desc := request.Post[entity.BankAccount](op, externalAccountsPath(accountID), p)
	if err := requireID(op, "accountID", accountID); err != nil {
		return desc, err
	}
	return desc, checkParams(op, params)
}

func retrieveBankAccount(accountID, bankAccountID string) (request.Descriptor[entity.BankAccount], error) {
	const op = "bank_account.retrieve"
	desc := request.Get[entity.BankAccount](op, request.JoinPath("accounts", accountID, "external_accounts", bankAccountID), nil)
	if err := requireID(op, "accountID", accountID); err != nil {
		return desc, err
	}
	return desc, requireID(op, "bankAccountID", bankAccountID)
}

func listBankAccounts(accountID string, list request.ListParams) (request.Descriptor[entity.ListResponse[entity.BankAccount]], error) {
	const op = "bank_account.all"
	p := request.Params{}
	list.Apply(p)
	desc := request.Get[entity.ListResponse[entity.BankAccount]](op, externalAccountsPath(accountID), p)
	return desc, requireID(op, "accountID", accountID)
}

func externalAccountsPath(accountID string) string {
	return request.JoinPath("accounts", accountID, "external_accounts")
}
