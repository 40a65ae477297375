package stripeapi

import (
	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
)

type ProductService struct {
	session transport.Session
}

// All lists products, most recently created first.
// https://stripe.com/docs/api#list_products
func (s *ProductService) All(list request.ListParams) *Call[entity.ListResponse[entity.Product]] {
	return newCall(s.session, listProducts(list), nil)
}

func listProducts(list request.ListParams) request.Descriptor[entity.ListResponse[entity.Product]] {
	p := request.Params{}
	list.Apply(p)
	return request.Get[entity.ListResponse[entity.Product]]("product.all", "products", p)
}
