package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotObject = errors.New("payload is not a JSON object")

// Opaque holds a Connect resource whose schema this package does not model.
// Any JSON object decodes; id and object are lifted out when present and the
// full payload is kept in Raw.
type Opaque struct {
	ID     *string
	Object *string
	Raw    json.RawMessage
}

func (o *Opaque) decode(entity string, data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &DecodeError{Entity: entity, Err: errNotObject}
	}

	var head struct {
		ID     *string `json:"id"`
		Object *string `json:"object"`
	}
	if err := json.Unmarshal(trimmed, &head); err != nil {
		return asDecodeError(entity, err)
	}

	o.ID = head.ID
	o.Object = head.Object
	o.Raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// Field decodes the named top-level field of the raw payload into dst.
func (o Opaque) Field(name string, dst any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(o.Raw, &fields); err != nil {
		return err
	}
	raw, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return json.Unmarshal(raw, dst)
}

func (o Opaque) MarshalJSON() ([]byte, error) {
	if len(o.Raw) == 0 {
		return []byte("{}"), nil
	}
	return o.Raw, nil
}

// Account is a Connect account (https://stripe.com/docs/api#account_object).
type Account struct{ Opaque }

func (a *Account) UnmarshalJSON(data []byte) error { return a.decode("Account", data) }

// Fee is an application fee collected on a connected account's charge.
type Fee struct{ Opaque }

func (f *Fee) UnmarshalJSON(data []byte) error { return f.decode("Fee", data) }

type FeeRefund struct{ Opaque }

func (r *FeeRefund) UnmarshalJSON(data []byte) error { return r.decode("FeeRefund", data) }

// BankAccount is an external account attached to a connected account.
type BankAccount struct{ Opaque }

func (b *BankAccount) UnmarshalJSON(data []byte) error { return b.decode("BankAccount", data) }

type Card struct{ Opaque }

func (c *Card) UnmarshalJSON(data []byte) error { return c.decode("Card", data) }
