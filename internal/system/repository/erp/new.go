package erp

import (
	"orderdesk/internal/system/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
)

const (
	pathHealth      = "/api/health/check"
	pathERPStatus   = "/api/erp/status"
	pathPerformance = "/api/metrics/performance"
)

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
