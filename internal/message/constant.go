package message

const (
	// DefaultPageSize is the message page size the ERP portal uses.
	DefaultPageSize = 20
	// TypeAll disables the type filter.
	TypeAll = "all"

	// DefaultFooter is shown when the server sends no footer.
	DefaultFooter = "点击查看详情"
)

var typeText = map[string]string{
	"order_status": "订单状态",
	"shipping":     "发货通知",
	"production":   "生产提醒",
	"system":       "系统通知",
}

var fieldLabel = map[string]string{
	"order_no":       "订单号",
	"customer_name":  "客户名称",
	"material_code":  "物料编码",
	"status":         "状态",
	"progress":       "进度",
	"shipping_no":    "快递单号",
	"estimated_date": "预计时间",
}

// TypeText maps a message type to its display text.
func TypeText(t string) string {
	if s, ok := typeText[t]; ok {
		return s
	}
	return "未知类型"
}

// FieldLabel maps a message data key to its display label. Unknown keys are returned as-is.
func FieldLabel(key string) string {
	if s, ok := fieldLabel[key]; ok {
		return s
	}
	return key
}
