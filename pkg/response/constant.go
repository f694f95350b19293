package response

const (
	// CodeNeedInviteBind asks the caller to run the invite-code binding flow.
	CodeNeedInviteBind = "NEED_INVITE_BIND"

	// notBoundHint is how older servers phrase the binding requirement without a code.
	notBoundHint = "未绑定企业"
)
