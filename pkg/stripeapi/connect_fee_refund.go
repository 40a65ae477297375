package stripeapi

import (
	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
)

type FeeRefundService struct {
	session transport.Session
}

type FeeRefundCreateParams struct {
	// Amount in minor units; the whole fee is refunded when absent.
	Amount   request.Opt[int64]
	Metadata request.Opt[map[string]string]
}

// Create refunds an application fee, in full or in part.
// https://stripe.com/docs/api#create_fee_refund
func (s *FeeRefundService) Create(feeID string, params FeeRefundCreateParams) *Call[entity.FeeRefund] {
	desc, err := createFeeRefund(feeID, params)
	return newCall(s.session, desc, err)
}

// https://stripe.com/docs/api#retrieve_fee_refund
func (s *FeeRefundService) Retrieve(feeID, refundID string) *Call[entity.FeeRefund] {
	desc, err := retrieveFeeRefund(feeID, refundID)
	return newCall(s.session, desc, err)
}

// https://stripe.com/docs/api#list_fee_refunds
func (s *FeeRefundService) All(feeID string, list request.ListParams) *Call[entity.ListResponse[entity.FeeRefund]] {
	desc, err := listFeeRefunds(feeID, list)
	return newCall(s.session, desc, err)
}

func createFeeRefund(feeID string, params FeeRefundCreateParams) (request.Descriptor[entity.FeeRefund], error) {
	const op = "fee_refund.create"
	p := request.Params{}
	request.SetOpt(p, "amount", params.Amount)
	request.SetOpt(p, "metadata", params.Metadata)
	desc := request.Post[entity.FeeRefund](op, request.JoinPath("application_fees", feeID, "refunds"), p)
	return desc, requireID(op, "feeID", feeID)
}

func retrieveFeeRefund(feeID, refundID string) (request.Descriptor[entity.FeeRefund], error) {
	const op = "fee_refund.retrieve"
	desc := request.Get[entity.FeeRefund](op, request.JoinPath("application_fees", feeID, "refunds", refundID), nil)
	if err := requireID(op, "feeID", feeID); err != nil {
		return desc, err
	}
	return desc, requireID(op, "refundID", refundID)
}

func listFeeRefunds(feeID string, list request.ListParams) (request.Descriptor[entity.ListResponse[entity.FeeRefund]], error) {
	const op = "fee_refund.all"
	p := request.Params{}
	list.Apply(p)
	desc := request.Get[entity.ListResponse[entity.FeeRefund]](op, request.JoinPath("application_fees", feeID, "refunds"), p)
	return desc, requireID(op, "feeID", feeID)
}
