package dispatch

import "errors"

var ErrInvalidOrderState = errors.New("only assigned orders can be completed")
