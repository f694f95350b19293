package cli

import (
	"fmt"

	"orderdesk/pkg/console"
	"orderdesk/pkg/i18n"

	"github.com/spf13/cobra"
)

func (h *handler) Upload(cmd *cobra.Command, req uploadReq) error {
	ctx := cmd.Context()

	f, err := h.fs.Open(req.Path)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	defer f.Close()

	out, err := h.uc.Upload(ctx, req.toInput(f))
	if err != nil {
		h.l.Debugf(ctx, "upload.delivery.cli.Upload: %v", err)
		return err
	}

	w := cmd.OutOrStdout()
	console.Success(w, i18n.FromContext(cmd.Context(), i18n.MsgUploaded, map[string]any{"Name": out.FileName}))
	console.Fields(w, uploadFields(out)...)
	return nil
}
