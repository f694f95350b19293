package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"orderdesk/internal/order"
	"orderdesk/pkg/session"
	"orderdesk/pkg/util"
)

func (uc *implUseCase) requireSession(ctx context.Context) error {
	_, err := session.Current(ctx, uc.store, uc.now())
	if err == nil {
		return nil
	}
	if errors.Is(err, session.ErrNotLoggedIn) {
		return order.ErrNotLoggedIn
	}
	return fmt.Errorf("order: %w", err)
}

// formatDate renders server dates as YYYY-MM-DD; unparseable values pass through.
func formatDate(s string) string {
	if t, ok := util.ParseTime(s); ok {
		return util.DateToStr(t)
	}
	return strings.TrimSpace(s)
}

// cleanAttachment strips backticks and whitespace the ERP leaves around URLs.
func cleanAttachment(u string) string {
	return strings.Map(func(r rune) rune {
		if r == '`' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, u)
}

func calculateProgress(materials []order.Material) int {
	if len(materials) == 0 {
		return 0
	}
	completed := 0
	for _, m := range materials {
		if m.Status == order.MaterialStatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(materials)) * 100))
}

func decorateOrder(o order.Order) order.Order {
	o.OrderDate = formatDate(o.OrderDate)
	o.StatusText = order.StatusText(o.Status)
	o.Progress = calculateProgress(o.Materials)
	return o
}

func decorateDetail(d order.Detail) order.Detail {
	d.OrderDate = formatDate(d.OrderDate)
	d.StatusText = order.StatusText(d.Status)
	for i := range d.DeliveryOrders {
		do := &d.DeliveryOrders[i]
		do.DeliveryDate = formatDate(do.DeliveryDate)
		if do.LogisticsCompany == "" {
			do.LogisticsCompany = "-"
		}
		cleaned := make([]string, 0, len(do.Attachments))
		for _, a := range do.Attachments {
			if c := cleanAttachment(a); c != "" {
				cleaned = append(cleaned, c)
			}
		}
		do.Attachments = cleaned
	}
	return d
}
