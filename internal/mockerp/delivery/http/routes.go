package http

import (
	"orderdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the ERP endpoints under r, which is expected to be the /api group.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/auth/wx-login", h.WxLogin)
	r.POST("/logs/error", h.ReportError)

	r.GET("/health/check", h.HealthCheck)
	r.GET("/erp/status", h.ERPStatus)
	r.GET("/metrics/performance", h.Performance)

	api := r.Group("")
	api.Use(mw.Auth())
	{
		api.POST("/auth/bind-company", h.BindCompany)
		api.GET("/user/profile", h.Profile)

		api.GET("/orders/search", h.SearchOrders)
		api.GET("/orders/:id/detail", h.OrderDetail)
		api.GET("/orders/:id/materials", h.OrderMaterials)
		api.GET("/materials/:id/progress", h.MaterialProgress)

		api.GET("/messages/history", h.MessageHistory)
		api.POST("/messages/mark-read", h.MarkRead)
		api.POST("/messages/mark-all-read", h.MarkAllRead)
		api.POST("/messages/clear-all", h.ClearAll)

		api.POST("/upload", h.Upload)
	}
}
