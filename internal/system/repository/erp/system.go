package erp

import (
	"context"

	"orderdesk/internal/system"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/response"
)

type healthData struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

type endpointStatData struct {
	Endpoint        string  `json:"endpoint"`
	TotalCalls      int64   `json:"totalCalls"`
	AvgResponseTime float64 `json:"avgResponseTime"`
	ErrorRate       float64 `json:"errorRate"`
	SuccessRate     float64 `json:"successRate"`
}

type erpStatusData struct {
	Stats     []endpointStatData `json:"stats"`
	CheckTime string             `json:"checkTime"`
}

type perfStatData struct {
	Hour            string  `json:"hour"`
	Endpoint        string  `json:"endpoint"`
	TotalCalls      int64   `json:"totalCalls"`
	AvgResponseTime float64 `json:"avgResponseTime"`
	MaxResponseTime float64 `json:"maxResponseTime"`
	ErrorCalls      int64   `json:"errorCalls"`
	ErrorRate       float64 `json:"errorRate"`
}

func (p perfStatData) toDomain(label string) system.PerfStat {
	return system.PerfStat{
		Label:           label,
		TotalCalls:      p.TotalCalls,
		AvgResponseTime: p.AvgResponseTime,
		MaxResponseTime: p.MaxResponseTime,
		ErrorCalls:      p.ErrorCalls,
		ErrorRate:       p.ErrorRate,
	}
}

type performanceData struct {
	HourlyStats   []perfStatData `json:"hourlyStats"`
	EndpointStats []perfStatData `json:"endpointStats"`
}

func (r *implERPRepository) Health(ctx context.Context) (system.Health, error) {
	var data healthData
	if err := r.get(ctx, "Health", pathHealth, &data); err != nil {
		return system.Health{}, err
	}
	return system.Health{Status: data.Status, Services: data.Services}, nil
}

func (r *implERPRepository) ERPStatus(ctx context.Context) (system.ERPStatus, error) {
	var data erpStatusData
	if err := r.get(ctx, "ERPStatus", pathERPStatus, &data); err != nil {
		return system.ERPStatus{}, err
	}
	out := system.ERPStatus{CheckTime: data.CheckTime}
	for _, s := range data.Stats {
		out.Stats = append(out.Stats, system.EndpointStat(s))
	}
	return out, nil
}

func (r *implERPRepository) Performance(ctx context.Context) (system.Performance, error) {
	var data performanceData
	if err := r.get(ctx, "Performance", pathPerformance, &data); err != nil {
		return system.Performance{}, err
	}
	var out system.Performance
	for _, s := range data.HourlyStats {
		out.Hourly = append(out.Hourly, s.toDomain(s.Hour))
	}
	for _, s := range data.EndpointStats {
		out.Endpoints = append(out.Endpoints, s.toDomain(s.Endpoint))
	}
	return out, nil
}

func (r *implERPRepository) get(ctx context.Context, op, path string, out any) error {
	resp, err := r.client.Execute(ctx, pkghttp.NewGETDescriptor(path, nil))
	if err != nil {
		r.l.Errorf(ctx, "system.repository.erp.%s: %v", op, err)
		return err
	}
	if _, err := response.Unwrap(resp.Body, out); err != nil {
		r.l.Warnf(ctx, "system.repository.erp.%s: %v", op, err)
		return err
	}
	return nil
}
