package cli

import (
	"orderdesk/internal/errorlog"
	"orderdesk/pkg/log"

	"github.com/spf13/cobra"
)

// Handler - Interface cho errorlog CLI commands
type Handler interface {
	Commands() []*cobra.Command
}

type handler struct {
	l  log.Logger
	uc errorlog.UseCase
}

// New - Factory
func New(l log.Logger, uc errorlog.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
