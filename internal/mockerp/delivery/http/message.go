package http

import (
	"orderdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *handler) MessageHistory(c *gin.Context) {
	u, err := h.processCaller(c)
	if err != nil {
		fail(c, err)
		return
	}

	req, err := h.processHistoryRequest(c)
	if err != nil {
		fail(c, err)
		return
	}
	if err := checkUserID(u, req.UserID); err != nil {
		fail(c, err)
		return
	}

	msgs, hasMore, unread := h.store.Messages(u.ID, req.Type, req.page.Page, req.page.Limit)
	response.OK(c, "", newHistoryResp(msgs, hasMore, unread))
}

func (h *handler) MarkRead(c *gin.Context) {
	u, err := h.processCaller(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req markReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errInvalidRequest)
		return
	}
	if err := checkUserID(u, req.UserID); err != nil {
		fail(c, err)
		return
	}

	if err := h.store.MarkRead(u.ID, req.MessageID); err != nil {
		fail(c, h.mapError(err))
		return
	}
	response.OK(c, "标记成功", nil)
}

// MarkAllRead succeeds even when nothing is unread.
func (h *handler) MarkAllRead(c *gin.Context) {
	u, ok := h.processUserRequest(c)
	if !ok {
		return
	}
	response.OK(c, "全部已读", changedResp{Changed: h.store.MarkAllRead(u.ID)})
}

func (h *handler) ClearAll(c *gin.Context) {
	u, ok := h.processUserRequest(c)
	if !ok {
		return
	}
	response.OK(c, "已清空", changedResp{Changed: h.store.ClearAll(u.ID)})
}
