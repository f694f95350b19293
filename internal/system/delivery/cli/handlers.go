package cli

import (
	"time"

	"orderdesk/pkg/console"

	"github.com/spf13/cobra"
)

// Monitor prints one snapshot, or keeps refreshing every interval until the context ends.
// While watching, a failed refresh is printed and the loop carries on.
func (h *handler) Monitor(cmd *cobra.Command, interval time.Duration) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	snap, err := h.uc.Status(ctx)
	if err != nil {
		return err
	}
	printSnapshot(w, snap)
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snap, err := h.uc.Status(ctx)
			if err != nil {
				h.l.Warnf(ctx, "system.delivery.cli.Monitor: %v", err)
				console.Fail(w, err.Error(), "")
				continue
			}
			printSnapshot(w, snap)
		}
	}
}
