package request

import (
	"net/url"
	"reflect"
	"slices"

	"github.com/stripe/stripe-go/v78/form"
)

// Params is the parameter bag of a request. Values may be any scalar, map or
// slice; nested values are sent in Stripe's bracket notation
// (external_account[country]=US, attributes[0]=size).
type Params map[string]any

// SetOpt stores o under key only when it is present.
func SetOpt[T any](p Params, key string, o Opt[T]) {
	if v, ok := o.Get(); ok {
		p[key] = v
	}
}

// Clone returns a deep copy of nested Params; other values are shared.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		if nested, ok := v.(Params); ok {
			v = nested.Clone()
		}
		out[k] = v
	}
	return out
}

// Values flattens the bag into form values. Every key in the bag is sent,
// including zero values such as false or 0; absence is expressed by leaving
// the key out.
func (p Params) Values() url.Values {
	fv := &form.Values{}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v := reflect.ValueOf(p[k])
		if !v.IsValid() {
			continue
		}
		// form skips zero values unless they sit behind a pointer.
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		form.AppendToPrefixed(fv, ptr.Interface(), []string{k})
	}
	return fv.ToValues()
}

// Encode returns the url-encoded form of the bag with keys sorted.
func (p Params) Encode() string {
	return p.Values().Encode()
}
