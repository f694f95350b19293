package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	// ErrNil is returned when the key does not exist.
	ErrNil = errors.New("redis: nil")
	// ErrDecode is returned by GetJSON when the stored value is not the expected JSON.
	ErrDecode = errors.New("redis: undecodable value")
)
