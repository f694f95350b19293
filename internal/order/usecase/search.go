package usecase

import (
	"context"
	"strings"

	"orderdesk/internal/order"
	"orderdesk/internal/order/repository"
	"orderdesk/pkg/paginator"
)

// Search - one page of the customer's orders
// Flow: require session → normalise paging → query ERP → decorate rows → derive HasMore
func (uc *implUseCase) Search(ctx context.Context, input order.SearchInput) (order.SearchOutput, error) {
	if err := uc.requireSession(ctx); err != nil {
		return order.SearchOutput{}, err
	}

	pq := paginator.PaginateQuery{Page: input.Page, Limit: input.PageSize}
	pq.Adjust(order.DefaultPageSize)

	status := strings.TrimSpace(input.Status)
	if strings.EqualFold(status, order.StatusAll) {
		status = ""
	}

	res, err := uc.erpRepo.SearchOrders(ctx, repository.SearchOptions{
		Keyword:  strings.TrimSpace(input.Keyword),
		Status:   status,
		Page:     pq.Page,
		PageSize: pq.Limit,
	})
	if err != nil {
		return order.SearchOutput{}, err
	}

	out := order.SearchOutput{
		Orders:   make([]order.Order, 0, len(res.Orders)),
		Total:    res.Total,
		Page:     pq.Page,
		PageSize: pq.Limit,
	}
	for _, o := range res.Orders {
		out.Orders = append(out.Orders, decorateOrder(o))
	}

	if res.HasMore != nil {
		out.HasMore = *res.HasMore
	} else {
		out.HasMore = paginator.Paginator{
			Total:       res.Total,
			Count:       len(res.Orders),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		}.HasNextPage()
	}
	return out, nil
}
