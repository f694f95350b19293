package order

import (
	"errors"
	"fmt"

	"orderdesk/pkg/session"
)

// Domain errors
var (
	ErrEmptyOrderNo    = errors.New("order: order number is empty")
	ErrEmptyOrderID    = errors.New("order: order id is empty")
	ErrEmptyMaterialID = errors.New("order: material id is empty")
	ErrNotLoggedIn     = fmt.Errorf("order: %w", session.ErrNotLoggedIn)
)
