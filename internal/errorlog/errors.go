package errorlog

import "errors"

// Domain errors
var (
	ErrEmptyReport = errors.New("errorlog: error text is empty")
)
