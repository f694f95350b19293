package cli

import (
	"orderdesk/internal/message"

	"github.com/spf13/cobra"
)

func (h *handler) Commands() []*cobra.Command {
	root := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"msg"},
		Short:   "Read the notification feed",
	}
	root.AddCommand(
		h.listCommand(),
		h.readCommand(),
		h.readAllCommand(),
		h.clearCommand(),
	)
	return []*cobra.Command{root}
}

func (h *handler) listCommand() *cobra.Command {
	var req historyReq
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.List(cmd, req)
		},
	}
	cmd.Flags().IntVarP(&req.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&req.PageSize, "page-size", message.DefaultPageSize, "messages per page")
	cmd.Flags().StringVarP(&req.Type, "type", "t", message.TypeAll, "message type filter")
	return cmd
}

func (h *handler) readCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <message-id>",
		Short: "Mark one message as read",
		Args:  cobra.ExactArgs(1),
		RunE:  h.MarkRead,
	}
}

func (h *handler) readAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every message as read",
		Args:  cobra.NoArgs,
		RunE:  h.MarkAllRead,
	}
}

func (h *handler) clearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every message",
		Args:  cobra.NoArgs,
		RunE:  h.ClearAll,
	}
}
