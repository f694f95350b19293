package i18n

import (
	"errors"

	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/response"
	"orderdesk/pkg/session"
)

// ToastID picks the message for err and the template data it needs.
func ToastID(err error) (string, map[string]any) {
	var (
		httpErr   *pkghttp.HTTPError
		domainErr *response.DomainError
	)
	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, pkghttp.ErrAuthExpired):
		return MsgAuthExpired, nil
	case errors.Is(err, session.ErrNotLoggedIn):
		return MsgNotLoggedIn, nil
	case errors.As(err, new(*pkghttp.TransportError)):
		return MsgTransport, nil
	case errors.As(err, &httpErr):
		return MsgHTTP, map[string]any{"Code": httpErr.Code, "Message": httpErr.Message}
	case errors.Is(err, response.ErrNeedInviteBind):
		return MsgNeedBind, nil
	case errors.As(err, &domainErr) && domainErr.Message != "":
		return MsgDomain, map[string]any{"Message": domainErr.Message}
	case errors.Is(err, pkghttp.ErrInvalidDescriptor):
		return MsgInvalidInput, map[string]any{"Message": err.Error()}
	default:
		return MsgUnknown, nil
	}
}

// Toast renders the user-facing failure message for err in lang. Nil renders as "".
func Toast(lang string, err error) string {
	id, data := ToastID(err)
	if id == "" {
		return ""
	}
	return Localize(lang, id, data)
}
