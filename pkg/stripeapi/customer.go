package stripeapi

import (
	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
)

type CustomerService struct {
	session transport.Session
}

type CustomerCreateParams struct {
	Email       request.Opt[string]
	Description request.Opt[string]
	Metadata    request.Opt[map[string]string]
}

// Retrieve fetches an existing customer by the ID returned when it was created.
// https://stripe.com/docs/api#retrieve_customer
func (s *CustomerService) Retrieve(customerID string) *Call[entity.Customer] {
	desc, err := retrieveCustomer(customerID)
	return newCall(s.session, desc, err)
}

// Create makes a new customer object.
// https://stripe.com/docs/api#create_customer
func (s *CustomerService) Create(params CustomerCreateParams) *Call[entity.Customer] {
	return newCall(s.session, createCustomer(params), nil)
}

func retrieveCustomer(customerID string) (request.Descriptor[entity.Customer], error) {
	const op = "customer.retrieve"
	desc := request.Get[entity.Customer](op, request.JoinPath("customers", customerID), nil)
	return desc, requireID(op, "customerID", customerID)
}

func createCustomer(params CustomerCreateParams) request.Descriptor[entity.Customer] {
	p := request.Params{}
	request.SetOpt(p, "email", params.Email)
	request.SetOpt(p, "description", params.Description)
	request.SetOpt(p, "metadata", params.Metadata)
	return request.Post[entity.Customer]("customer.create", "customers", p)
}
