package cli

import (
	"orderdesk/internal/auth"
	"orderdesk/pkg/log"

	"github.com/spf13/cobra"
)

// Handler - Interface cho auth CLI commands
type Handler interface {
	Commands() []*cobra.Command
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New - Factory
func New(l log.Logger, uc auth.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
