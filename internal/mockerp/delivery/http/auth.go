package http

import (
	"strings"

	"orderdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// WxLogin exchanges a mini-program login code for a token.
func (h *handler) WxLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req wxLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "mockerp.delivery.http.WxLogin: ShouldBindJSON: %v", err)
		fail(c, errInvalidRequest)
		return
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		fail(c, errEmptyCode)
		return
	}

	u := h.store.Login(code, req.UserInfo.NickName)
	token, exp, err := h.jwtManager.Issue(u.ID, u.OpenID, u.UnionID)
	if err != nil {
		h.l.Errorf(ctx, "mockerp.delivery.http.WxLogin: Issue: %v", err)
		fail(c, errInternal)
		return
	}

	response.OK(c, "登录成功", newWxLoginResp(u, token, exp))
}

// BindCompany links the caller to the company behind an invite code.
func (h *handler) BindCompany(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.processCaller(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req bindCompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errInvalidRequest)
		return
	}
	if err := checkUserID(u, req.UserID); err != nil {
		fail(c, err)
		return
	}

	b, existed, err := h.store.Bind(u.ID, req.InviteCode)
	if err != nil {
		h.l.Warnf(ctx, "mockerp.delivery.http.BindCompany: %v", err)
		fail(c, h.mapError(err))
		return
	}

	message := "绑定成功"
	if existed {
		message = "已绑定企业"
	}
	response.OK(c, message, bindCompanyResp{BindStatus: true, CompanyInfo: newCompanyResp(b.Company)})
}

// Profile returns the caller and its company binding. Unbound callers get NEED_INVITE_BIND.
func (h *handler) Profile(c *gin.Context) {
	u, b, err := h.processBoundCaller(c)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "", newProfileResp(u, b))
}
