package cli

import (
	"github.com/spf13/cobra"
)

func (h *handler) Commands() []*cobra.Command {
	var req uploadReq
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file to the ERP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Path = args[0]
			return h.Upload(cmd, req)
		},
	}
	cmd.Flags().StringToStringVarP(&req.Fields, "field", "f", nil, "extra form field, key=value")
	return []*cobra.Command{cmd}
}
