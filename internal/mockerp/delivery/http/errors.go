package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/mockerp"
	"orderdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	codeInvalidInviteCode = "INVALID_INVITE_CODE"
	codeNotFound          = "NOT_FOUND"
)

// httpError is written as a plain failure envelope with its status.
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string { return e.message }

// domainError is written as a 200 failure envelope carrying a code.
type domainError struct {
	code    string
	message string
}

func (e *domainError) Error() string { return e.message }

var (
	errInvalidRequest = &httpError{status: http.StatusBadRequest, message: "请求参数错误"}
	errEmptyCode      = &httpError{status: http.StatusBadRequest, message: "code不能为空"}
	errMissingFile    = &httpError{status: http.StatusBadRequest, message: "请选择要上传的文件"}
	errUserMismatch   = &httpError{status: http.StatusForbidden, message: "无权操作其他用户的数据"}
	errUnauthorized   = &httpError{status: http.StatusUnauthorized, message: "登录已过期，请重新登录"}
	errInternal       = &httpError{status: http.StatusInternalServerError, message: "服务器内部错误"}

	errNeedBind          = &domainError{code: response.CodeNeedInviteBind, message: "用户未绑定企业"}
	errInvalidInviteCode = &domainError{code: codeInvalidInviteCode, message: "邀请码无效"}
	errOrderNotFound     = &domainError{code: codeNotFound, message: "订单不存在"}
	errMaterialNotFound  = &domainError{code: codeNotFound, message: "物料不存在"}
	errMessageNotFound   = &domainError{code: codeNotFound, message: "消息不存在"}
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, mockerp.ErrNotBound):
		return errNeedBind
	case errors.Is(err, mockerp.ErrInvalidInviteCode):
		return errInvalidInviteCode
	case errors.Is(err, mockerp.ErrOrderNotFound):
		return errOrderNotFound
	case errors.Is(err, mockerp.ErrMaterialNotFound):
		return errMaterialNotFound
	case errors.Is(err, mockerp.ErrMessageNotFound):
		return errMessageNotFound
	case errors.Is(err, mockerp.ErrUnknownUser):
		return errUnauthorized
	default:
		return errInternal
	}
}

// fail writes err as an envelope. Errors not produced by mapError become 500s.
func fail(c *gin.Context, err error) {
	var de *domainError
	if errors.As(err, &de) {
		response.DomainFail(c, de.code, de.message)
		return
	}
	var he *httpError
	if errors.As(err, &he) {
		response.Fail(c, he.status, he.message)
		return
	}
	response.Fail(c, errInternal.status, errInternal.message)
}
