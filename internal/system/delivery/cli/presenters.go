package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"orderdesk/internal/system"
	"orderdesk/pkg/console"

	"github.com/fatih/color"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	statsHeaders = []string{"ENDPOINT", "CALLS", "AVG MS", "ERROR %", "SUCCESS %"}
	perfHeaders  = []string{"", "CALLS", "AVG MS", "MAX MS", "ERRORS", "ERROR %"}

	healthy   = color.New(color.FgGreen).SprintFunc()
	unhealthy = color.New(color.FgRed).SprintFunc()
)

func printSnapshot(w io.Writer, s system.Snapshot) {
	console.Title(w, "Health "+s.CheckedAt.Local().Format(timeLayout))
	console.Fields(w, healthFields(s.Health)...)

	console.Title(w, "ERP calls")
	console.Table(w, statsHeaders, statsRows(s.ERP.Stats))

	if len(s.Performance.Endpoints) > 0 {
		console.Title(w, "Latency by endpoint")
		console.Table(w, withLabel(perfHeaders, "ENDPOINT"), perfRows(s.Performance.Endpoints))
	}
	if len(s.Performance.Hourly) > 0 {
		console.Title(w, "Latency by hour")
		console.Table(w, withLabel(perfHeaders, "HOUR"), perfRows(s.Performance.Hourly))
	}
}

func healthFields(h system.Health) []console.Field {
	status := healthy(h.Status)
	if !h.Healthy() {
		status = unhealthy(h.Status)
	}
	fields := []console.Field{{Key: "Status", Value: status}}
	for _, name := range slices.Sorted(maps.Keys(h.Services)) {
		fields = append(fields, console.Field{Key: name, Value: h.Services[name]})
	}
	return fields
}

func statsRows(stats []system.EndpointStat) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Endpoint,
			strconv.FormatInt(s.TotalCalls, 10),
			fmtFloat(s.AvgResponseTime),
			fmtFloat(s.ErrorRate),
			fmtFloat(s.SuccessRate),
		})
	}
	return rows
}

func perfRows(stats []system.PerfStat) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Label,
			strconv.FormatInt(s.TotalCalls, 10),
			fmtFloat(s.AvgResponseTime),
			fmtFloat(s.MaxResponseTime),
			strconv.FormatInt(s.ErrorCalls, 10),
			fmtFloat(s.ErrorRate),
		})
	}
	return rows
}

func withLabel(headers []string, label string) []string {
	out := append([]string(nil), headers...)
	out[0] = label
	return out
}

func fmtFloat(f float64) string {
	return fmt.Sprintf("%.1f", f)
}
