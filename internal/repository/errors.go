package repository

import "errors"

var (
	ErrCourierNotFound = errors.New("courier not found")
	ErrOrderNotFound   = errors.New("order not found")
)
