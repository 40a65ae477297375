package entity

// Customer is https://stripe.com/docs/api#customer_object.
type Customer struct {
	ID             string  `json:"id"`
	Object         string  `json:"object"`
	AccountBalance int64   `json:"account_balance"`
	Created        int64   `json:"created"`
	Currency       *string `json:"currency"`
	DefaultSource  *string `json:"default_source"`
	Delinquent     bool    `json:"delinquent"`
	Email          *string `json:"email"`
	Livemode       bool    `json:"livemode"`
}

type customerFields Customer

func (c *Customer) UnmarshalJSON(data []byte) error {
	return decodeStrict("Customer", data, (*customerFields)(c))
}
