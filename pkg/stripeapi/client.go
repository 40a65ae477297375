// Package stripeapi maps Stripe resource operations onto request descriptors
// and typed responses. Every operation builds a *Call; nothing is sent until
// the caller runs it with Do or Send.
package stripeapi

import "github.com/DanielPopoola/stripeapi-go/pkg/transport"

type Client struct {
	Customers *CustomerService
	Products  *ProductService
	Connect   *ConnectService
}

// ConnectService groups the operations on connected accounts.
type ConnectService struct {
	Accounts     *AccountService
	Fees         *FeeService
	FeeRefunds   *FeeRefundService
	BankAccounts *BankAccountService
}

// New binds every namespace to session. The client holds no other state and
// is safe for concurrent use when session is.
func New(session transport.Session) *Client {
	return &Client{
		Customers: &CustomerService{session: session},
		Products:  &ProductService{session: session},
		Connect: &ConnectService{
			Accounts:     &AccountService{session: session},
			Fees:         &FeeService{session: session},
			FeeRefunds:   &FeeRefundService{session: session},
			BankAccounts: &BankAccountService{session: session},
		},
	}
}
