package http

import (
	"orderdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *handler) SearchOrders(c *gin.Context) {
	_, b, err := h.processBoundCaller(c)
	if err != nil {
		fail(c, err)
		return
	}

	req, err := h.processSearchRequest(c)
	if err != nil {
		fail(c, err)
		return
	}

	orders, total := h.store.SearchOrders(b.CustomerID, req.Keyword, req.Status, req.page.Page, req.page.Limit)
	response.OK(c, "", newSearchResp(orders, total, req.page))
}

func (h *handler) OrderDetail(c *gin.Context) {
	_, b, err := h.processBoundCaller(c)
	if err != nil {
		fail(c, err)
		return
	}

	o, err := h.store.Order(b.CustomerID, c.Param("id"))
	if err != nil {
		fail(c, h.mapError(err))
		return
	}
	response.OK(c, "", newDetailResp(o))
}

func (h *handler) OrderMaterials(c *gin.Context) {
	_, b, err := h.processBoundCaller(c)
	if err != nil {
		fail(c, err)
		return
	}

	o, err := h.store.Order(b.CustomerID, c.Param("id"))
	if err != nil {
		fail(c, h.mapError(err))
		return
	}
	response.OK(c, "", materialsResp{Materials: newMaterialResps(o.Materials)})
}

func (h *handler) MaterialProgress(c *gin.Context) {
	_, b, err := h.processBoundCaller(c)
	if err != nil {
		fail(c, err)
		return
	}

	m, err := h.store.Material(b.CustomerID, c.Param("id"))
	if err != nil {
		fail(c, h.mapError(err))
		return
	}
	response.OK(c, "", newProgressResp(m))
}
