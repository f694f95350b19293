package cli

import (
	"orderdesk/internal/order"
	"orderdesk/pkg/log"

	"github.com/spf13/cobra"
)

// Handler - Interface cho order CLI commands
type Handler interface {
	Commands() []*cobra.Command
}

type handler struct {
	l  log.Logger
	uc order.UseCase
}

// New - Factory
func New(l log.Logger, uc order.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
