package mockerp

import (
	"fmt"
	"time"
)

// Demo invite codes accepted by the fake ERP.
const (
	InviteCodeAcme  = "ACME2026"
	InviteCodeNorth = "NORTH2026"

	seedOrdersPerCompany = 23
	seedMessagesPerUser  = 25
)

var (
	companyAcme  = Company{Code: "C-ACME", Name: "Acme Fasteners", CustomerID: "1001"}
	companyNorth = Company{Code: "C-NORTH", Name: "North Steel Works", CustomerID: "1002"}

	orderStatuses   = []string{"pending", "producing", "shipped", "completed", "cancelled"}
	messageTypes    = []string{"order_status", "shipping", "production", "system"}
	materialNames   = []string{"Hex bolt", "Flange nut", "Washer", "Anchor"}
	materialsStatus = []string{"completed", "producing", "pending"}
)

// seed must run before the store is shared.
func seed(s *Store) {
	s.invites[InviteCodeAcme] = companyAcme
	s.invites[InviteCodeNorth] = companyNorth

	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	for ci, c := range []Company{companyAcme, companyNorth} {
		for i := 1; i <= seedOrdersPerCompany; i++ {
			s.orders = append(s.orders, seedOrder(c, ci, i, base.AddDate(0, 0, i*3)))
		}
	}
}

func seedOrder(c Company, ci, i int, date time.Time) *Order {
	id := fmt.Sprintf("%d%03d", ci+1, i)
	o := &Order{
		ID:           id,
		No:           fmt.Sprintf("SO-%s-%03d", c.Code[2:], i),
		CustomerID:   c.CustomerID,
		CustomerName: c.Name,
		Date:         date,
		Status:       orderStatuses[i%len(orderStatuses)],
		RMBAmount:    float64(1000*i) + 0.5,
	}
	for m := 0; m < 1+i%3; m++ {
		status := materialsStatus[(i+m)%len(materialsStatus)]
		o.Materials = append(o.Materials, Material{
			ID:               fmt.Sprintf("M%s-%d", id, m+1),
			Code:             fmt.Sprintf("MAT-%02d", m+1),
			Name:             materialNames[m%len(materialNames)],
			Quantity:         float64(100 * (m + 1)),
			ProducedQuantity: float64(50 * (m + 1)),
			Status:           status,
			Steps: []Step{
				{Name: "cutting", Status: StepCompleted, UpdatedAt: date.Add(24 * time.Hour)},
				{Name: "heat treatment", Status: status, UpdatedAt: date.Add(72 * time.Hour)},
			},
		})
	}
	if o.Status == "shipped" || o.Status == "completed" {
		o.DeliveryOrders = []DeliveryOrder{{
			Date:             date.AddDate(0, 0, 10),
			LogisticsCompany: "SF Express",
			LogisticsCode:    fmt.Sprintf("SF%010d", i),
			Address:          "88 Harbour Road, Ningbo",
			Remark:           "",
			// the real ERP wraps some URLs in backticks
			Attachments: []string{fmt.Sprintf(" `https://files.example.com/pod/%s.jpg` ", id)},
			Products: []Product{
				{Name: materialNames[0], Spec: "M8x40", Quantity: 100},
			},
		}}
	}
	return o
}

func seedMessages(userID string, now time.Time, newID func() string) []*Message {
	out := make([]*Message, 0, seedMessagesPerUser)
	for i := 0; i < seedMessagesPerUser; i++ {
		t := messageTypes[i%len(messageTypes)]
		orderNo := fmt.Sprintf("SO-ACME-%03d", i%seedOrdersPerCompany+1)
		out = append(out, &Message{
			ID:          newID(),
			UserID:      userID,
			Type:        t,
			Title:       fmt.Sprintf("%s #%d", t, i+1),
			Description: "Order " + orderNo + " was updated",
			Data:        map[string]string{"order_no": orderNo, "status": orderStatuses[i%len(orderStatuses)]},
			IsRead:      i%3 == 0,
			CreatedAt:   now.Add(-time.Duration(i) * time.Hour),
			OrderNo:     orderNo,
		})
	}
	return out
}
