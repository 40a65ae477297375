package request_test

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpt(t *testing.T) {
	var absent request.Opt[string]
	_, ok := absent.Get()
	assert.False(t, ok)
	assert.Equal(t, "fallback", absent.Or("fallback"))

	present := request.Some("x")
	v, ok := present.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	assert.False(t, request.FromPtr[int64](nil).IsSet())
	n := int64(3)
	assert.Equal(t, int64(3), request.FromPtr(&n).Or(0))
}

func TestSetOpt_OmitsAbsentKeys(t *testing.T) {
	p := request.Params{}
	request.SetOpt(p, "email", request.None[string]())
	request.SetOpt(p, "description", request.Some(""))

	assert.NotContains(t, p, "email")
	assert.Contains(t, p, "description")
}

func TestParamsEncode_BracketNotation(t *testing.T) {
	p := request.Params{
		"external_account": request.Params{
			"account_number": "000123456789",
			"country":        "US",
			"currency":       "usd",
		},
		"metadata":             map[string]string{"order": "6735"},
		"created":              map[string]int64{"gte": 1500000000},
		"default_for_currency": true,
		"amount":               int64(250),
		"attributes":           []string{"size", "color"},
		"weight":               1.25,
	}

	values, err := url.ParseQuery(p.Encode())
	require.NoError(t, err)

	assert.Equal(t, "000123456789", values.Get("external_account[account_number]"))
	assert.Equal(t, "US", values.Get("external_account[country]"))
	assert.Equal(t, "usd", values.Get("external_account[currency]"))
	assert.Equal(t, "6735", values.Get("metadata[order]"))
	assert.Equal(t, "1500000000", values.Get("created[gte]"))
	assert.Equal(t, "true", values.Get("default_for_currency"))
	assert.Equal(t, "250", values.Get("amount"))
	assert.Equal(t, "size", values.Get("attributes[0]"))
	assert.Equal(t, "color", values.Get("attributes[1]"))
	weight, err := strconv.ParseFloat(values.Get("weight"), 64)
	require.NoError(t, err)
	assert.Equal(t, 1.25, weight)
}

func TestParamsEncode_ZeroValuesAreSent(t *testing.T) {
	values := request.Params{
		"default_for_currency": false,
		"amount":               int64(0),
		"description":          "",
	}.Values()

	assert.Equal(t, []string{"false"}, values["default_for_currency"])
	assert.Equal(t, []string{"0"}, values["amount"])
	assert.Equal(t, []string{""}, values["description"])
}

func TestParamsEncode_OtherSliceAndMapTypes(t *testing.T) {
	values := request.Params{
		"ids":  []int64{1, 2},
		"meta": map[string]bool{"x": true},
		"tags": []any{"a", request.Params{"k": "v"}},
	}.Values()

	assert.Equal(t, "1", values.Get("ids[0]"))
	assert.Equal(t, "2", values.Get("ids[1]"))
	assert.Equal(t, "true", values.Get("meta[x]"))
	assert.Equal(t, "a", values.Get("tags[0]"))
	assert.Equal(t, "v", values.Get("tags[1][k]"))
	assert.NotContains(t, values, "ids")
	assert.NotContains(t, values, "meta")
}

func TestParamsEncode_Deterministic(t *testing.T) {
	p := request.Params{"b": "2", "a": "1", "c": request.Params{"z": "1", "y": "2"}}

	first := p.Encode()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, p.Encode())
	}
}

func TestDescriptorRequest_CopiesParams(t *testing.T) {
	d := request.Post[entity.Customer]("customer.create", "customers", request.Params{
		"metadata": request.Params{"k": "v"},
	})

	req := d.Request()
	req.Params["email"] = "x@y.z"
	req.Params["metadata"].(request.Params)["k"] = "changed"

	assert.NotContains(t, d.Params, "email")
	assert.Equal(t, "v", d.Params["metadata"].(request.Params)["k"])
	assert.Equal(t, http.MethodPost, req.Method)
	assert.True(t, req.HasBody())
}

func TestDescriptorDecode_UsesResponseType(t *testing.T) {
	d := request.Get[entity.Inventory]("inventory", "inventory", nil)

	inv, err := d.Decode([]byte(`{"type":"infinite"}`))

	require.NoError(t, err)
	assert.Equal(t, entity.InventoryInfinite, inv.Type)
	assert.False(t, d.Request().HasBody())
}

func TestJoinPath_EscapesSegments(t *testing.T) {
	assert.Equal(t, "customers/cus_123", request.JoinPath("customers", "cus_123"))
	assert.Equal(t, "customers/a%2Fb", request.JoinPath("customers", "a/b"))
}

func TestListParamsApply(t *testing.T) {
	p := request.Params{}
	request.ListParams{Limit: request.Some(int64(10)), EndingBefore: request.Some("fee_9")}.Apply(p)

	assert.Equal(t, request.Params{"limit": int64(10), "ending_before": "fee_9"}, p)
}
