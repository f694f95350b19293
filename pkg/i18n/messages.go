package i18n

import goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

var zhMessages = []*goi18n.Message{
	{ID: MsgTransport, Other: "网络连接失败，请检查网络后重试"},
	{ID: MsgAuthExpired, Other: "登录已过期，请重新登录"},
	{ID: MsgHTTP, Other: "请求失败（{{.Code}}）：{{.Message}}"},
	{ID: MsgNeedBind, Other: "请先使用邀请码绑定企业"},
	{ID: MsgDomain, Other: "{{.Message}}"},
	{ID: MsgNotLoggedIn, Other: "用户未登录"},
	{ID: MsgInvalidInput, Other: "输入有误：{{.Message}}"},
	{ID: MsgUnknown, Other: "操作失败，请重试"},
	{ID: MsgLoginHint, Other: "请运行 `orderdesk login --code <code>` 重新登录"},
	{ID: MsgLoginOK, Other: "登录成功"},
	{ID: MsgBindOK, Other: "绑定成功：{{.Company}}"},
	{ID: MsgMarkedAll, Other: "已标记全部已读"},
	{ID: MsgCleared, Other: "已清空所有消息"},
	{ID: MsgNoOrders, Other: "暂无相关订单"},
	{ID: MsgNoMessages, Other: "暂无相关消息"},
	{ID: MsgLoggedOut, Other: "已退出登录"},
	{ID: MsgMarkedRead, Other: "已标记为已读"},
	{ID: MsgUploaded, Other: "上传成功：{{.Name}}"},
	{ID: MsgReported, Other: "错误已上报"},
	{ID: MsgBindHint, Other: "账号尚未绑定企业，请运行 `orderdesk bind <邀请码>`"},
	{ID: MsgNotBound, Other: "未绑定企业"},
}

var enMessages = []*goi18n.Message{
	{ID: MsgTransport, Other: "Network unavailable, please check your connection and retry"},
	{ID: MsgAuthExpired, Other: "Your session has expired, please log in again"},
	{ID: MsgHTTP, Other: "Request failed ({{.Code}}): {{.Message}}"},
	{ID: MsgNeedBind, Other: "Please bind your company with an invite code first"},
	{ID: MsgDomain, Other: "{{.Message}}"},
	{ID: MsgNotLoggedIn, Other: "You are not logged in"},
	{ID: MsgInvalidInput, Other: "Invalid input: {{.Message}}"},
	{ID: MsgUnknown, Other: "Something went wrong, please retry"},
	{ID: MsgLoginHint, Other: "Run `orderdesk login --code <code>` to log in again"},
	{ID: MsgLoginOK, Other: "Logged in"},
	{ID: MsgBindOK, Other: "Bound to {{.Company}}"},
	{ID: MsgMarkedAll, Other: "All messages marked as read"},
	{ID: MsgCleared, Other: "All messages cleared"},
	{ID: MsgNoOrders, Other: "No matching orders"},
	{ID: MsgNoMessages, Other: "No messages"},
	{ID: MsgLoggedOut, Other: "Logged out"},
	{ID: MsgMarkedRead, Other: "Marked as read"},
	{ID: MsgUploaded, Other: "Uploaded {{.Name}}"},
	{ID: MsgReported, Other: "Error reported"},
	{ID: MsgBindHint, Other: "This account has no company yet, run `orderdesk bind <invite-code>`"},
	{ID: MsgNotBound, Other: "Not bound to a company"},
}
