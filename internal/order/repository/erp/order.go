package erp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"orderdesk/internal/order"
	"orderdesk/internal/order/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/response"
)

func (r *implERPRepository) SearchOrders(ctx context.Context, opts repository.SearchOptions) (repository.SearchResult, error) {
	query := url.Values{}
	if opts.Keyword != "" {
		query.Set("keyword", opts.Keyword)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("pageSize", strconv.Itoa(opts.PageSize))

	var data searchData
	if err := r.get(ctx, "SearchOrders", pathSearch, query, &data); err != nil {
		return repository.SearchResult{}, err
	}

	out := repository.SearchResult{
		Total:    data.Total,
		Page:     data.Page,
		PageSize: data.PageSize,
		HasMore:  data.HasMore,
	}
	for _, o := range data.Orders {
		out.Orders = append(out.Orders, o.toDomain())
	}
	return out, nil
}

func (r *implERPRepository) GetDetail(ctx context.Context, orderNo string) (order.Detail, error) {
	var data detailData
	if err := r.get(ctx, "GetDetail", fmt.Sprintf(pathDetailFmt, url.PathEscape(orderNo)), nil, &data); err != nil {
		return order.Detail{}, err
	}
	return data.toDomain(), nil
}

func (r *implERPRepository) GetMaterials(ctx context.Context, orderID string) ([]order.Material, error) {
	var data materialsData
	if err := r.get(ctx, "GetMaterials", fmt.Sprintf(pathMaterialsFmt, url.PathEscape(orderID)), nil, &data); err != nil {
		return nil, err
	}
	return materialsToDomain(data.Materials), nil
}

func (r *implERPRepository) GetMaterialProgress(ctx context.Context, materialID string) (order.MaterialProgress, error) {
	var data progressData
	if err := r.get(ctx, "GetMaterialProgress", fmt.Sprintf(pathMaterialProgress, url.PathEscape(materialID)), nil, &data); err != nil {
		return order.MaterialProgress{}, err
	}
	return data.toDomain(), nil
}

func (r *implERPRepository) get(ctx context.Context, op, path string, query url.Values, out any) error {
	resp, err := r.client.Execute(ctx, pkghttp.NewGETDescriptor(path, query))
	if err != nil {
		r.l.Errorf(ctx, "order.repository.erp.%s: %v", op, err)
		return err
	}
	if _, err := response.Unwrap(resp.Body, out); err != nil {
		r.l.Warnf(ctx, "order.repository.erp.%s: %v", op, err)
		return err
	}
	return nil
}
