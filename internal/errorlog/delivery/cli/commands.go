package cli

import (
	"strings"

	"orderdesk/internal/errorlog"
	"orderdesk/pkg/console"
	"orderdesk/pkg/i18n"

	"github.com/spf13/cobra"
)

func (h *handler) Commands() []*cobra.Command {
	return []*cobra.Command{{
		Use:   "report-error <text>...",
		Short: "Send a client-side error report to the ERP",
		Args:  cobra.MinimumNArgs(1),
		RunE:  h.Report,
	}}
}

func (h *handler) Report(cmd *cobra.Command, args []string) error {
	input := errorlog.ReportInput{Error: strings.Join(args, " ")}
	if err := h.uc.Report(cmd.Context(), input); err != nil {
		return err
	}
	console.Success(cmd.OutOrStdout(), i18n.FromContext(cmd.Context(), i18n.MsgReported, nil))
	return nil
}
