package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrUnknownEnum  = errors.New("unrecognized enum value")
)

// DecodeError reports a response body that does not match the shape of the
// entity it was decoded into.
type DecodeError struct {
	Entity string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s.%s: %v", e.Entity, e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Entity, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err carries a *DecodeError.
func IsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	ok := errors.As(err, &decErr)
	return decErr, ok
}

// Decode parses body into a new T, enforcing T's required fields and enum sets.
func Decode[T any](body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, asDecodeError(entityName(reflect.TypeOf((*T)(nil)).Elem()), err)
	}
	return &v, nil
}

// decodeStrict checks that every required field of dst is present and non-null
// before unmarshalling. dst must be a conversion of the entity to a type
// without an UnmarshalJSON method.
func decodeStrict[T any](entity string, data []byte, dst *T) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return asDecodeError(entity, err)
	}

	for _, name := range requiredFields(reflect.TypeOf((*T)(nil)).Elem()) {
		raw, ok := fields[name]
		if !ok || isNull(raw) {
			return &DecodeError{Entity: entity, Field: name, Err: ErrMissingField}
		}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return asDecodeError(entity, err)
	}
	return nil
}

func asDecodeError(entity string, err error) error {
	if decErr, ok := IsDecodeError(err); ok {
		return decErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Entity: entity, Field: typeErr.Field, Err: err}
	}
	return &DecodeError{Entity: entity, Err: err}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

var requiredCache sync.Map // reflect.Type -> []string

// requiredFields lists the wire names of every non-pointer field of t.
func requiredFields(t reflect.Type) []string {
	if cached, ok := requiredCache.Load(t); ok {
		return cached.([]string)
	}

	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() == reflect.Pointer {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
	}

	requiredCache.Store(t, names)
	return names
}

func entityName(t reflect.Type) string {
	name, _, _ := strings.Cut(t.Name(), "[")
	return name
}
