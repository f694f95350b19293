package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func (h *handler) Commands() []*cobra.Command {
	var watch time.Duration
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Show ERP health, call stats and latency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Monitor(cmd, watch)
		},
	}
	cmd.Flags().DurationVarP(&watch, "watch", "w", 0, "refresh interval, 0 prints once")
	return []*cobra.Command{cmd}
}
