package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyServiceName = errors.New("service name is required")
	ErrNoCategory       = errors.New("a category must be selected")
	ErrInvalidPrice     = errors.New("price must be a non-negative number")
)
