package i18n

// Message IDs for user-visible failure toasts and prompts.
const (
	MsgTransport    = "toast.transport"
	MsgAuthExpired  = "toast.auth_expired"
	MsgHTTP         = "toast.http"
	MsgNeedBind     = "toast.need_bind"
	MsgDomain       = "toast.domain"
	MsgNotLoggedIn  = "toast.not_logged_in"
	MsgInvalidInput = "toast.invalid_input"
	MsgUnknown      = "toast.unknown"
	MsgLoginHint    = "prompt.login_hint"
	MsgLoginOK      = "prompt.login_ok"
	MsgBindOK       = "prompt.bind_ok"
	MsgMarkedAll    = "prompt.marked_all"
	MsgCleared      = "prompt.cleared"
	MsgNoOrders     = "prompt.no_orders"
	MsgNoMessages   = "prompt.no_messages"
	MsgLoggedOut    = "prompt.logged_out"
	MsgMarkedRead   = "prompt.marked_read"
	MsgUploaded     = "prompt.uploaded"
	MsgReported     = "prompt.reported"
	MsgBindHint     = "prompt.bind_hint"
	MsgNotBound     = "prompt.not_bound"
)
