package system

import "time"

// Snapshot - everything the monitor view shows
type Snapshot struct {
	Health      Health
	ERP         ERPStatus
	Performance Performance
	CheckedAt   time.Time
}

// Health - overall and per-dependency health
type Health struct {
	Status   string
	Services map[string]string
}

// Healthy reports whether the server and every dependency it lists are healthy.
func (h Health) Healthy() bool {
	if h.Status != "healthy" {
		return false
	}
	for _, s := range h.Services {
		if s != "healthy" {
			return false
		}
	}
	return true
}

// ERPStatus - per-endpoint call stats for the last hour
type ERPStatus struct {
	Stats     []EndpointStat
	CheckTime string
}

// EndpointStat - call stats of one ERP endpoint
type EndpointStat struct {
	Endpoint        string
	TotalCalls      int64
	AvgResponseTime float64
	ErrorRate       float64
	SuccessRate     float64
}

// Performance - last day's latency and error figures
type Performance struct {
	Hourly    []PerfStat
	Endpoints []PerfStat
}

// PerfStat - latency figures for one hour or one endpoint
type PerfStat struct {
	Label           string
	TotalCalls      int64
	AvgResponseTime float64
	MaxResponseTime float64
	ErrorCalls      int64
	ErrorRate       float64
}
