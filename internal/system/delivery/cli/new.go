package cli

import (
	"orderdesk/internal/system"
	"orderdesk/pkg/log"

	"github.com/spf13/cobra"
)

// Handler - Interface cho monitor CLI commands
type Handler interface {
	Commands() []*cobra.Command
}

type handler struct {
	l  log.Logger
	uc system.UseCase
}

// New - Factory
func New(l log.Logger, uc system.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
