package errorlog

import "time"

// ReportInput - one client-side error. A zero Timestamp means now.
type ReportInput struct {
	Error     string
	Timestamp time.Time
}
