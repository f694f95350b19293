package cli

import (
	"orderdesk/internal/upload"
	"orderdesk/pkg/log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Handler - Interface cho upload CLI commands
type Handler interface {
	Commands() []*cobra.Command
}

type handler struct {
	l  log.Logger
	uc upload.UseCase
	fs afero.Fs
}

// New - Factory. fs is where upload paths are resolved.
func New(l log.Logger, uc upload.UseCase, fs afero.Fs) Handler {
	return &handler{l: l, uc: uc, fs: fs}
}
