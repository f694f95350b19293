package cli

import (
	"fmt"
	"strconv"
	"strings"

	"orderdesk/internal/order"
	"orderdesk/pkg/console"
)

type searchReq struct {
	Keyword  string
	Status   string
	Page     int
	PageSize int
}

func (r searchReq) toInput() order.SearchInput {
	return order.SearchInput{
		Keyword:  r.Keyword,
		Status:   r.Status,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

var (
	orderHeaders    = []string{"ORDER NO", "DATE", "STATUS", "PROGRESS", "CUSTOMER"}
	materialHeaders = []string{"ID", "CODE", "NAME", "QTY", "PRODUCED", "SHIPPED", "STATUS"}
	productHeaders  = []string{"PRODUCT", "SPEC", "QTY"}
	stepHeaders     = []string{"STEP", "STATUS", "UPDATED"}
)

func orderRows(orders []order.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderNo,
			o.OrderDate,
			o.StatusText,
			strconv.Itoa(o.Progress) + "%",
			o.CustomerName,
		})
	}
	return rows
}

func pageFooter(out order.SearchOutput) string {
	footer := fmt.Sprintf("page %d, %d/%d", out.Page, len(out.Orders), out.Total)
	if out.HasMore {
		footer += fmt.Sprintf(", next: --page %d", out.Page+1)
	}
	return footer
}

func materialRows(ms []order.Material) [][]string {
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, []string{
			m.MaterialID,
			m.MaterialCode,
			m.MaterialName,
			formatQty(m.Quantity),
			formatQty(m.ProducedQuantity),
			formatQty(m.ShippedQuantity),
			order.StatusText(m.Status),
		})
	}
	return rows
}

func detailFields(d order.Detail) []console.Field {
	return []console.Field{
		{Key: "Order ID", Value: d.OrderID},
		{Key: "Customer", Value: d.CustomerName},
		{Key: "Date", Value: d.OrderDate},
		{Key: "Status", Value: d.StatusText},
		{Key: "Amount", Value: fmt.Sprintf("¥%.2f", d.RMBAmount)},
	}
}

func deliveryTitle(n int, do order.DeliveryOrder) string {
	return fmt.Sprintf("Delivery #%d %s", n, do.DeliveryDate)
}

func deliveryFields(do order.DeliveryOrder) []console.Field {
	return []console.Field{
		{Key: "Carrier", Value: strings.TrimSpace(do.LogisticsCompany + " " + do.LogisticsCode)},
		{Key: "Address", Value: do.Address},
		{Key: "Remark", Value: do.Remark},
		{Key: "Attachments", Value: strings.Join(do.Attachments, ", ")},
	}
}

func productRows(ps []order.DeliveryProduct) [][]string {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, []string{p.ProductName, p.Spec, formatQty(p.Quantity)})
	}
	return rows
}

func progressFields(p order.MaterialProgress) []console.Field {
	return []console.Field{
		{Key: "Material ID", Value: p.MaterialID},
		{Key: "Status", Value: order.StatusText(p.Status)},
		{Key: "Progress", Value: strconv.Itoa(p.Percent) + "%"},
	}
}

func stepRows(steps []order.ProgressStep) [][]string {
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{s.Name, order.StatusText(s.Status), s.UpdatedAt})
	}
	return rows
}

// formatQty drops the fraction of whole quantities.
func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
