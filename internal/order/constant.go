package order

const (
	// DefaultPageSize is the order list page size the ERP portal uses.
	DefaultPageSize = 10
	// StatusAll disables the status filter.
	StatusAll = "all"

	MaterialStatusCompleted = "completed"
)

var statusText = map[string]string{
	"2":         "已下单",
	"4":         "已完成",
	"pending":   "待生产",
	"producing": "生产中",
	"shipped":   "已发货",
	"completed": "已完成",
	"cancelled": "已取消",
}

// StatusText maps an ERP status code to its display text. Unknown codes read as pending.
func StatusText(status string) string {
	if t, ok := statusText[status]; ok {
		return t
	}
	return statusText["pending"]
}
