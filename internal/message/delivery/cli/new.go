package cli

import (
	"orderdesk/internal/message"
	"orderdesk/pkg/log"

	"github.com/spf13/cobra"
)

// Handler - Interface cho message CLI commands
type Handler interface {
	Commands() []*cobra.Command
}

type handler struct {
	l  log.Logger
	uc message.UseCase
}

// New - Factory
func New(l log.Logger, uc message.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
