package erp

import (
	"orderdesk/internal/order"
	"orderdesk/pkg/response"
)

type orderData struct {
	OrderID      response.ID    `json:"order_id"`
	OrderNo      string         `json:"order_no"`
	CustomerName string         `json:"customer_name"`
	OrderDate    string         `json:"order_date"`
	Status       response.ID    `json:"status"`
	Materials    []materialData `json:"materials"`
}

func (o orderData) toDomain() order.Order {
	return order.Order{
		OrderID:      o.OrderID.String(),
		OrderNo:      o.OrderNo,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate,
		Status:       o.Status.String(),
		Materials:    materialsToDomain(o.Materials),
	}
}

type searchData struct {
	Orders   []orderData `json:"orders"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	HasMore  *bool       `json:"hasMore"`
}

type materialData struct {
	MaterialID       response.ID `json:"material_id"`
	MaterialCode     string      `json:"material_code"`
	MaterialName     string      `json:"material_name"`
	Quantity         float64     `json:"quantity"`
	ProducedQuantity float64     `json:"produced_quantity"`
	ShippedQuantity  float64     `json:"shipped_quantity"`
	Status           response.ID `json:"status"`
}

func materialsToDomain(in []materialData) []order.Material {
	if len(in) == 0 {
		return nil
	}
	out := make([]order.Material, 0, len(in))
	for _, m := range in {
		out = append(out, order.Material{
			MaterialID:       m.MaterialID.String(),
			MaterialCode:     m.MaterialCode,
			MaterialName:     m.MaterialName,
			Quantity:         m.Quantity,
			ProducedQuantity: m.ProducedQuantity,
			ShippedQuantity:  m.ShippedQuantity,
			Status:           m.Status.String(),
		})
	}
	return out
}

type deliveryProductData struct {
	ProductName string  `json:"productName"`
	Spec        string  `json:"spec"`
	Quantity    float64 `json:"quantity"`
}

type deliveryOrderData struct {
	DeliveryDate     string                `json:"delivery_date"`
	LogisticsCompany string                `json:"logistics_company"`
	LogisticsCode    string                `json:"logistics_code"`
	Address          string                `json:"address"`
	Remark           string                `json:"remark"`
	Attachments      []string              `json:"attachments"`
	Products         []deliveryProductData `json:"products"`
}

type detailData struct {
	OrderID        response.ID         `json:"order_id"`
	OrderNo        string              `json:"order_no"`
	CustomerName   string              `json:"customer_name"`
	RMBAmount      float64             `json:"rmb_amount"`
	CreatedAt      string              `json:"created_at"`
	OrderDate      string              `json:"order_date"`
	Status         response.ID         `json:"status"`
	DeliveryOrders []deliveryOrderData `json:"delivery_orders"`
	Materials      []materialData      `json:"materials"`
}

func (d detailData) toDomain() order.Detail {
	date := d.CreatedAt
	if date == "" {
		date = d.OrderDate
	}
	out := order.Detail{
		OrderID:      d.OrderID.String(),
		OrderNo:      d.OrderNo,
		CustomerName: d.CustomerName,
		RMBAmount:    d.RMBAmount,
		OrderDate:    date,
		Status:       d.Status.String(),
		Materials:    materialsToDomain(d.Materials),
	}
	for _, do := range d.DeliveryOrders {
		delivery := order.DeliveryOrder{
			DeliveryDate:     do.DeliveryDate,
			LogisticsCompany: do.LogisticsCompany,
			LogisticsCode:    do.LogisticsCode,
			Address:          do.Address,
			Remark:           do.Remark,
			Attachments:      do.Attachments,
		}
		for _, p := range do.Products {
			delivery.Products = append(delivery.Products, order.DeliveryProduct(p))
		}
		out.DeliveryOrders = append(out.DeliveryOrders, delivery)
	}
	return out
}

type materialsData struct {
	Materials []materialData `json:"materials"`
}

type progressStepData struct {
	Name      string      `json:"name"`
	Status    response.ID `json:"status"`
	UpdatedAt string      `json:"updated_at"`
}

type progressData struct {
	MaterialID   response.ID        `json:"material_id"`
	MaterialName string             `json:"material_name"`
	Status       response.ID        `json:"status"`
	Progress     float64            `json:"progress"`
	Steps        []progressStepData `json:"steps"`
}

func (p progressData) toDomain() order.MaterialProgress {
	out := order.MaterialProgress{
		MaterialID:   p.MaterialID.String(),
		MaterialName: p.MaterialName,
		Status:       p.Status.String(),
		Percent:      int(p.Progress + 0.5),
	}
	for _, s := range p.Steps {
		out.Steps = append(out.Steps, order.ProgressStep{
			Name:      s.Name,
			Status:    s.Status.String(),
			UpdatedAt: s.UpdatedAt,
		})
	}
	return out
}
