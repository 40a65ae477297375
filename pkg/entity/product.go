package entity

import (
	"encoding/json"
	"fmt"
)

// Product is https://stripe.com/docs/api#product_object.
type Product struct {
	ID                string            `json:"id"`
	Object            string            `json:"object"`
	Active            bool              `json:"active"`
	Attributes        []string          `json:"attributes"`
	Caption           string            `json:"caption"`
	Created           int64             `json:"created"`
	Description       *string           `json:"description"`
	Images            []string          `json:"images"`
	Livemode          bool              `json:"livemode"`
	Metadata          map[string]string `json:"metadata"`
	Name              string            `json:"name"`
	PackageDimensions PackageDimensions `json:"package_dimensions"`
	Shippable         bool              `json:"shippable"`
	SKUs              SKUList           `json:"skus"`
	Updated           int64             `json:"updated"`
	URL               *string           `json:"url"`
}

type productFields Product

func (p *Product) UnmarshalJSON(data []byte) error {
	return decodeStrict("Product", data, (*productFields)(p))
}

// SKUList is the SKU page embedded in a product. Unlike a top-level list it
// always carries total_count.
type SKUList struct {
	Object     string `json:"object"`
	URL        string `json:"url"`
	HasMore    bool   `json:"has_more"`
	Data       []SKU  `json:"data"`
	TotalCount int64  `json:"total_count"`
}

type skuListFields SKUList

func (l *SKUList) UnmarshalJSON(data []byte) error {
	return decodeStrict("SKUList", data, (*skuListFields)(l))
}

// SKU is https://stripe.com/docs/api#sku_object.
type SKU struct {
	ID                string             `json:"id"`
	Object            string             `json:"object"`
	Active            bool               `json:"active"`
	Attributes        map[string]string  `json:"attributes"`
	Created           int64              `json:"created"`
	Currency          string             `json:"currency"`
	Image             *string            `json:"image"`
	Inventory         Inventory          `json:"inventory"`
	Livemode          bool               `json:"livemode"`
	PackageDimensions *PackageDimensions `json:"package_dimensions"`
	Price             int64              `json:"price"`
	Product           string             `json:"product"`
	Updated           int64              `json:"updated"`
}

type skuFields SKU

func (s *SKU) UnmarshalJSON(data []byte) error {
	return decodeStrict("SKU", data, (*skuFields)(s))
}

type InventoryType string

const (
	InventoryFinite   InventoryType = "finite"
	InventoryBucket   InventoryType = "bucket"
	InventoryInfinite InventoryType = "infinite"
)

func (t *InventoryType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Entity: "Inventory", Field: "type", Err: err}
	}

	switch v := InventoryType(s); v {
	case InventoryFinite, InventoryBucket, InventoryInfinite:
		*t = v
		return nil
	}
	return &DecodeError{Entity: "Inventory", Field: "type", Err: fmt.Errorf("%w %q", ErrUnknownEnum, s)}
}

type BucketValue string

const (
	BucketLimited    BucketValue = "limited"
	BucketOutOfStock BucketValue = "out_of_stock"
	BucketInStock    BucketValue = "in_stock"
)

func (b *BucketValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Entity: "Inventory", Field: "value", Err: err}
	}

	switch v := BucketValue(s); v {
	case BucketLimited, BucketOutOfStock, BucketInStock:
		*b = v
		return nil
	}
	return &DecodeError{Entity: "Inventory", Field: "value", Err: fmt.Errorf("%w %q", ErrUnknownEnum, s)}
}

// Inventory describes stock for a SKU. Value is only sent when Type is bucket.
type Inventory struct {
	Quantity *int64        `json:"quantity"`
	Type     InventoryType `json:"type"`
	Value    *BucketValue  `json:"value"`
}

type inventoryFields Inventory

func (i *Inventory) UnmarshalJSON(data []byte) error {
	return decodeStrict("Inventory", data, (*inventoryFields)(i))
}

type PackageDimensions struct {
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
	Width  float64 `json:"width"`
}

type packageDimensionsFields PackageDimensions

func (d *PackageDimensions) UnmarshalJSON(data []byte) error {
	return decodeStrict("PackageDimensions", data, (*packageDimensionsFields)(d))
}
