package http

import (
	"orderdesk/internal/middleware"
	"orderdesk/internal/mockerp"
	pkgJWT "orderdesk/pkg/jwt"
	"orderdesk/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho fake ERP HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l          log.Logger
	store      *mockerp.Store
	jwtManager pkgJWT.IManager
}

// New - Factory
func New(l log.Logger, store *mockerp.Store, jwtManager pkgJWT.IManager) Handler {
	return &handler{l: l, store: store, jwtManager: jwtManager}
}
