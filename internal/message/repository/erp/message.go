package erp

import (
	"context"
	"net/url"
	"strconv"

	"orderdesk/internal/message/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/response"
)

func (r *implERPRepository) History(ctx context.Context, opts repository.HistoryOptions) (repository.HistoryResult, error) {
	query := url.Values{}
	query.Set("userId", opts.UserID)
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("pageSize", strconv.Itoa(opts.PageSize))
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}

	resp, err := r.client.Execute(ctx, pkghttp.NewGETDescriptor(pathHistory, query))
	if err != nil {
		r.l.Errorf(ctx, "message.repository.erp.History: %v", err)
		return repository.HistoryResult{}, err
	}

	var data historyData
	if _, err := response.Unwrap(resp.Body, &data); err != nil {
		r.l.Warnf(ctx, "message.repository.erp.History: %v", err)
		return repository.HistoryResult{}, err
	}

	out := repository.HistoryResult{
		HasMore:     data.HasMore,
		Total:       data.Total,
		UnreadCount: data.UnreadCount,
	}
	for _, m := range data.Messages {
		out.Messages = append(out.Messages, m.toDomain())
	}
	return out, nil
}

func (r *implERPRepository) MarkRead(ctx context.Context, userID, messageID string) error {
	return r.post(ctx, "MarkRead", pathMarkRead, markReadRequest{UserID: userID, MessageID: messageID})
}

func (r *implERPRepository) MarkAllRead(ctx context.Context, userID string) error {
	return r.post(ctx, "MarkAllRead", pathMarkAllRead, userRequest{UserID: userID})
}

func (r *implERPRepository) ClearAll(ctx context.Context, userID string) error {
	return r.post(ctx, "ClearAll", pathClearAll, userRequest{UserID: userID})
}

func (r *implERPRepository) post(ctx context.Context, op, path string, body any) error {
	desc, err := pkghttp.NewPOSTJSONDescriptor(path, body)
	if err != nil {
		return err
	}
	resp, err := r.client.Execute(ctx, desc)
	if err != nil {
		r.l.Errorf(ctx, "message.repository.erp.%s: %v", op, err)
		return err
	}
	if _, err := response.Unwrap(resp.Body, nil); err != nil {
		r.l.Warnf(ctx, "message.repository.erp.%s: %v", op, err)
		return err
	}
	return nil
}
