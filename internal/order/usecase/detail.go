package usecase

import (
	"context"
	"strings"

	"orderdesk/internal/order"
)

func (uc *implUseCase) Detail(ctx context.Context, orderNo string) (order.Detail, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return order.Detail{}, order.ErrEmptyOrderNo
	}
	if err := uc.requireSession(ctx); err != nil {
		return order.Detail{}, err
	}

	d, err := uc.erpRepo.GetDetail(ctx, orderNo)
	if err != nil {
		return order.Detail{}, err
	}
	return decorateDetail(d), nil
}

func (uc *implUseCase) Materials(ctx context.Context, orderID string) ([]order.Material, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, order.ErrEmptyOrderID
	}
	if err := uc.requireSession(ctx); err != nil {
		return nil, err
	}
	return uc.erpRepo.GetMaterials(ctx, orderID)
}

func (uc *implUseCase) MaterialProgress(ctx context.Context, materialID string) (order.MaterialProgress, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return order.MaterialProgress{}, order.ErrEmptyMaterialID
	}
	if err := uc.requireSession(ctx); err != nil {
		return order.MaterialProgress{}, err
	}

	p, err := uc.erpRepo.GetMaterialProgress(ctx, materialID)
	if err != nil {
		return order.MaterialProgress{}, err
	}
	if p.MaterialID == "" {
		p.MaterialID = materialID
	}
	return p, nil
}
