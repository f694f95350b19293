package usecase

import (
	"context"
	"strings"

	"orderdesk/internal/message"
	"orderdesk/internal/message/repository"
	"orderdesk/pkg/paginator"
)

func (uc *implUseCase) History(ctx context.Context, input message.HistoryInput) (message.HistoryOutput, error) {
	userID, err := uc.userID(ctx)
	if err != nil {
		return message.HistoryOutput{}, err
	}

	pq := paginator.PaginateQuery{Page: input.Page, Limit: input.PageSize}
	pq.Adjust(message.DefaultPageSize)

	msgType := strings.TrimSpace(input.Type)
	if strings.EqualFold(msgType, message.TypeAll) {
		msgType = ""
	}

	res, err := uc.erpRepo.History(ctx, repository.HistoryOptions{
		UserID:   userID,
		Page:     pq.Page,
		PageSize: pq.Limit,
		Type:     msgType,
	})
	if err != nil {
		return message.HistoryOutput{}, err
	}

	out := message.HistoryOutput{
		Messages: make([]message.Message, 0, len(res.Messages)),
		Page:     pq.Page,
	}
	unread := 0
	for _, m := range res.Messages {
		if !m.IsRead {
			unread++
		}
		out.Messages = append(out.Messages, decorate(m))
	}

	if res.UnreadCount != nil {
		out.UnreadCount = *res.UnreadCount
	} else {
		out.UnreadCount = unread
	}
	if res.HasMore != nil {
		out.HasMore = *res.HasMore
	} else {
		out.HasMore = paginator.Paginator{
			Total:       res.Total,
			Count:       len(res.Messages),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		}.HasNextPage()
	}
	return out, nil
}

func decorate(m message.Message) message.Message {
	m.TypeText = message.TypeText(m.Type)
	if m.Footer == "" {
		m.Footer = message.DefaultFooter
	}
	for i := range m.Data {
		m.Data[i].Key = message.FieldLabel(m.Data[i].Key)
	}
	return m
}
