package util

import (
	"strings"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

// ERP endpoints are not consistent about timestamp formats; these are the ones seen on the wire.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateTimeFormat,
	DateFormat,
	time.RFC1123,
}

// ParseTime tries every known ERP layout. Zones default to UTC.
func ParseTime(str string) (time.Time, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func MillisecondsToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}
