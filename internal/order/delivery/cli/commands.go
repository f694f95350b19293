package cli

import (
	"orderdesk/internal/order"

	"github.com/spf13/cobra"
)

func (h *handler) Commands() []*cobra.Command {
	root := &cobra.Command{
		Use:   "orders",
		Short: "Search orders and follow their production",
	}
	root.AddCommand(
		h.searchCommand(),
		h.detailCommand(),
		h.materialsCommand(),
		h.progressCommand(),
	)
	return []*cobra.Command{root}
}

func (h *handler) searchCommand() *cobra.Command {
	var req searchReq
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List orders of the bound company, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Search(cmd, req)
		},
	}
	cmd.Flags().StringVarP(&req.Keyword, "keyword", "k", "", "order number fragment")
	cmd.Flags().StringVarP(&req.Status, "status", "s", order.StatusAll, "status filter")
	cmd.Flags().IntVarP(&req.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&req.PageSize, "page-size", order.DefaultPageSize, "orders per page")
	return cmd
}

func (h *handler) detailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detail <order-no>",
		Short: "Show an order with its deliveries",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Detail,
	}
}

func (h *handler) materialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "materials <order-id>",
		Short: "List the materials of an order",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Materials,
	}
}

func (h *handler) progressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <material-id>",
		Short: "Show the production steps of a material",
		Args:  cobra.ExactArgs(1),
		RunE:  h.MaterialProgress,
	}
}
