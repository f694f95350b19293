package erp

import (
	"orderdesk/internal/order/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
)

const (
	pathSearch           = "/api/orders/search"
	pathDetailFmt        = "/api/orders/%s/detail"
	pathMaterialsFmt     = "/api/orders/%s/materials"
	pathMaterialProgress = "/api/materials/%s/progress"
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
