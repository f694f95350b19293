package middleware

import (
	"time"

	pkgJWT "orderdesk/pkg/jwt"
	"orderdesk/pkg/log"
)

// CallRecorder receives one entry per served request.
type CallRecorder interface {
	RecordCall(endpoint string, status int, d time.Duration)
}

type Middleware struct {
	l          log.Logger
	jwtManager pkgJWT.IManager
	recorder   CallRecorder
}

func New(l log.Logger, jwtManager pkgJWT.IManager, recorder CallRecorder) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		recorder:   recorder,
	}
}
