package stripeapi

import (
	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
)

type FeeService struct {
	session transport.Session
}

type FeeListParams struct {
	request.ListParams

	// Charge only returns fees for the charge with this ID.
	Charge request.Opt[string]
	// Created filters on creation time, e.g. {"gte": 1500000000}.
	Created request.Opt[map[string]int64]
}

// Retrieve fetches an application fee.
// https://stripe.com/docs/api#retrieve_application_fee
func (s *FeeService) Retrieve(feeID string) *Call[entity.Fee] {
	desc, err := retrieveFee(feeID)
	return newCall(s.session, desc, err)
}

// All lists application fees, most recent first.
// https://stripe.com/docs/api#list_application_fees
func (s *FeeService) All(params FeeListParams) *Call[entity.ListResponse[entity.Fee]] {
	return newCall(s.session, listFees(params), nil)
}

func retrieveFee(feeID string) (request.Descriptor[entity.Fee], error) {
	const op = "fee.retrieve"
	desc := request.Get[entity.Fee](op, request.JoinPath("application_fees", feeID), nil)
	return desc, requireID(op, "feeID", feeID)
}

func listFees(params FeeListParams) request.Descriptor[entity.ListResponse[entity.Fee]] {
	p := request.Params{}
	request.SetOpt(p, "charge", params.Charge)
	request.SetOpt(p, "created", params.Created)
	params.Apply(p)
	return request.Get[entity.ListResponse[entity.Fee]]("fee.all", "application_fees", p)
}
