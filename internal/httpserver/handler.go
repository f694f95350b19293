package httpserver

import (
	"net/http"

	"orderdesk/internal/middleware"
	mockerpHTTP "orderdesk/internal/mockerp/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.jwtManager, srv.store)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	erpHandler := mockerpHTTP.New(srv.l, srv.store, srv.jwtManager)
	erpHandler.RegisterRoutes(srv.gin.Group("/api"), mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	// CallStats sits outside Recovery so panicking requests are counted as 500s.
	srv.gin.Use(mw.CallStats(), middleware.Recovery(srv.l))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// Handler exposes the routed engine, mainly for httptest.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
