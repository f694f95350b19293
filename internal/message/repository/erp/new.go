package erp

import (
	"orderdesk/internal/message/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
)

const (
	pathHistory     = "/api/messages/history"
	pathMarkRead    = "/api/messages/mark-read"
	pathMarkAllRead = "/api/messages/mark-all-read"
	pathClearAll    = "/api/messages/clear-all"
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
