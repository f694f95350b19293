package http

import (
	"time"

	"orderdesk/internal/mockerp"
	"orderdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	statsWindow   = 24 * time.Hour
	statusHealthy = "healthy"
)

func byEndpoint(c mockerp.CallLog) string { return c.Endpoint }

func byHour(c mockerp.CallLog) string { return c.At.Format(hourLayout) }

func (h *handler) HealthCheck(c *gin.Context) {
	response.OK(c, "", healthResp{
		Status:   statusHealthy,
		Services: map[string]string{"erp": statusHealthy, "database": statusHealthy},
	})
}

func (h *handler) ERPStatus(c *gin.Context) {
	now := h.store.Now()
	stats := h.store.CallStats(now.Add(-statsWindow), byEndpoint)

	resp := erpStatusResp{
		Stats:     make([]endpointStatResp, 0, len(stats)),
		CheckTime: now.Format(time.RFC3339),
	}
	for _, s := range stats {
		resp.Stats = append(resp.Stats, newEndpointStatResp(s))
	}
	response.OK(c, "", resp)
}

func (h *handler) Performance(c *gin.Context) {
	since := h.store.Now().Add(-statsWindow)
	hourly := h.store.CallStats(since, byHour)
	endpoints := h.store.CallStats(since, byEndpoint)

	resp := performanceResp{
		HourlyStats:   make([]perfStatResp, 0, len(hourly)),
		EndpointStats: make([]perfStatResp, 0, len(endpoints)),
	}
	for _, s := range hourly {
		resp.HourlyStats = append(resp.HourlyStats, newPerfStatResp(s, true))
	}
	for _, s := range endpoints {
		resp.EndpointStats = append(resp.EndpointStats, newPerfStatResp(s, false))
	}
	response.OK(c, "", resp)
}
