package http

import (
	"path/filepath"

	"orderdesk/internal/mockerp"
	"orderdesk/pkg/response"
	"orderdesk/pkg/util"

	"github.com/gin-gonic/gin"
)

// Upload stores the metadata of the multipart "file" field. Content is discarded.
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.processCaller(c); err != nil {
		fail(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.l.Warnf(ctx, "mockerp.delivery.http.Upload: FormFile: %v", err)
		fail(c, errMissingFile)
		return
	}

	u := h.store.SaveUpload(filepath.Base(fh.Filename), fh.Size)
	response.OK(c, "上传成功", newUploadResp(u))
}

// ReportError accepts client error reports without authentication.
func (h *handler) ReportError(c *gin.Context) {
	ctx := c.Request.Context()

	var req errorReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errInvalidRequest)
		return
	}

	ts := h.store.Now()
	if req.Timestamp > 0 {
		ts = util.MillisecondsToTime(req.Timestamp)
	}
	h.store.AddErrorReport(mockerp.ErrorReport{Error: req.Error, OpenID: req.OpenID, Timestamp: ts})
	h.l.Infof(ctx, "mockerp.delivery.http.ReportError: openid=%s error=%s", req.OpenID, req.Error)

	response.OK(c, "", nil)
}
