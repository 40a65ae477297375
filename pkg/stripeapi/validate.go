package stripeapi

import (
	"errors"

	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/go-playground/validator"
)

var (
	validate = validator.New()

	errEmpty = errors.New("must not be empty")
)

// requireID rejects empty path identifiers, which would otherwise silently
// address the collection instead of one resource.
func requireID(operation, name, value string) error {
	if err := validate.Var(value, "required"); err != nil {
		return &request.ArgumentError{Operation: operation, Field: name, Err: errEmpty}
	}
	return nil
}

// checkParams applies the `validate` tags of a params struct.
func checkParams(operation string, params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &request.ArgumentError{Operation: operation, Field: fieldErrs[0].Field(), Err: errEmpty}
	}
	return &request.ArgumentError{Operation: operation, Err: err}
}
