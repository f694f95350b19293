package erp

import (
	"context"

	"orderdesk/internal/errorlog/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
	"orderdesk/pkg/response"
)

const pathReportError = "/api/logs/error"

type implERPRepository struct {
	client pkghttp.IClient
	l      log.Logger
}

// New - Factory
func New(client pkghttp.IClient, l log.Logger) repository.ERPRepository {
	return &implERPRepository{
		client: client,
		l:      l,
	}
}

type reportRequest struct {
	Error string `json:"error"`
	// Timestamp is epoch milliseconds.
	Timestamp int64  `json:"timestamp"`
	OpenID    string `json:"openid,omitempty"`
}

func (r *implERPRepository) ReportError(ctx context.Context, opts repository.ReportOptions) error {
	desc, err := pkghttp.NewPOSTJSONDescriptor(pathReportError, reportRequest{
		Error:     opts.Error,
		Timestamp: opts.Timestamp.UnixMilli(),
		OpenID:    opts.OpenID,
	})
	if err != nil {
		return err
	}

	resp, err := r.client.Execute(ctx, desc)
	if err != nil {
		return err
	}
	// some deployments answer this endpoint with an empty body
	if len(resp.Body) == 0 {
		return nil
	}
	_, err = response.Unwrap(resp.Body, nil)
	return err
}
