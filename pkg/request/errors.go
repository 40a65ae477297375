package request

import (
	"errors"
	"fmt"
)

// ArgumentError reports call arguments that cannot form a request, such as an
// empty identifier. Such calls never reach the network.
type ArgumentError struct {
	Operation string
	Field     string
	Err       error
}

func (e *ArgumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid argument %s: %v", e.Operation, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: invalid arguments: %v", e.Operation, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func IsArgumentError(err error) (*ArgumentError, bool) {
	var argErr *ArgumentError
	ok := errors.As(err, &argErr)
	return argErr, ok
}
