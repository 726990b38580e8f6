package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransport      = errors.New("invalid transport type")

	ErrCourierNotFound = errors.New("courier not found")
)
