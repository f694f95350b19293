package erp

import (
	"orderdesk/internal/auth/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
)

const (
	pathWxLogin     = "/api/auth/wx-login"
	pathBindCompany = "/api/auth/bind-company"
	pathProfile     = "/api/user/profile"
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
