package cli

import (
	"orderdesk/pkg/console"
	"orderdesk/pkg/i18n"

	"github.com/spf13/cobra"
)

func (h *handler) Search(cmd *cobra.Command, req searchReq) error {
	ctx := cmd.Context()

	out, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "order.delivery.cli.Search: %v", err)
		return err
	}

	w := cmd.OutOrStdout()
	if len(out.Orders) == 0 {
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgNoOrders, nil))
		return nil
	}
	console.Table(w, orderHeaders, orderRows(out.Orders))
	console.Hint(w, pageFooter(out))
	return nil
}

func (h *handler) Detail(cmd *cobra.Command, args []string) error {
	d, err := h.uc.Detail(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	console.Title(w, d.OrderNo)
	console.Fields(w, detailFields(d)...)
	if len(d.Materials) > 0 {
		console.Table(w, materialHeaders, materialRows(d.Materials))
	}
	for i, do := range d.DeliveryOrders {
		console.Title(w, deliveryTitle(i+1, do))
		console.Fields(w, deliveryFields(do)...)
		if len(do.Products) > 0 {
			console.Table(w, productHeaders, productRows(do.Products))
		}
	}
	return nil
}

func (h *handler) Materials(cmd *cobra.Command, args []string) error {
	ms, err := h.uc.Materials(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	console.Table(cmd.OutOrStdout(), materialHeaders, materialRows(ms))
	return nil
}

func (h *handler) MaterialProgress(cmd *cobra.Command, args []string) error {
	p, err := h.uc.MaterialProgress(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	console.Title(w, p.MaterialName)
	console.Fields(w, progressFields(p)...)
	if len(p.Steps) > 0 {
		console.Table(w, stepHeaders, stepRows(p.Steps))
	}
	return nil
}
