package cli

import (
	"orderdesk/pkg/console"
	"orderdesk/pkg/i18n"

	"github.com/spf13/cobra"
)

func (h *handler) List(cmd *cobra.Command, req historyReq) error {
	ctx := cmd.Context()

	out, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "message.delivery.cli.List: %v", err)
		return err
	}

	w := cmd.OutOrStdout()
	if len(out.Messages) == 0 {
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgNoMessages, nil))
		return nil
	}
	for _, m := range out.Messages {
		printMessage(w, m)
	}
	console.Hint(w, pageFooter(out))
	return nil
}

func (h *handler) MarkRead(cmd *cobra.Command, args []string) error {
	if err := h.uc.MarkRead(cmd.Context(), args[0]); err != nil {
		return err
	}
	console.Success(cmd.OutOrStdout(), i18n.FromContext(cmd.Context(), i18n.MsgMarkedRead, nil))
	return nil
}

func (h *handler) MarkAllRead(cmd *cobra.Command, _ []string) error {
	if err := h.uc.MarkAllRead(cmd.Context()); err != nil {
		return err
	}
	console.Success(cmd.OutOrStdout(), i18n.FromContext(cmd.Context(), i18n.MsgMarkedAll, nil))
	return nil
}

func (h *handler) ClearAll(cmd *cobra.Command, _ []string) error {
	if err := h.uc.ClearAll(cmd.Context()); err != nil {
		return err
	}
	console.Success(cmd.OutOrStdout(), i18n.FromContext(cmd.Context(), i18n.MsgCleared, nil))
	return nil
}
