package http

import (
	"strconv"
	"strings"

	"orderdesk/internal/mockerp"
	"orderdesk/pkg/paginator"
	"orderdesk/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	defaultOrderPageSize   = 10
	defaultMessagePageSize = 20
	filterAll              = "all"
)

// processCaller returns the authenticated user.
func (h *handler) processCaller(c *gin.Context) (mockerp.User, error) {
	p, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return mockerp.User{}, errUnauthorized
	}
	u, err := h.store.User(p.UserID)
	if err != nil {
		return mockerp.User{}, h.mapError(err)
	}
	return u, nil
}

// processBoundCaller returns the authenticated user and its company binding.
func (h *handler) processBoundCaller(c *gin.Context) (mockerp.User, mockerp.Binding, error) {
	u, err := h.processCaller(c)
	if err != nil {
		return mockerp.User{}, mockerp.Binding{}, err
	}
	b, err := h.store.Binding(u.ID)
	if err != nil {
		return mockerp.User{}, mockerp.Binding{}, h.mapError(err)
	}
	return u, b, nil
}

// checkUserID rejects requests that name another user than the token owner. An empty
// userId means the caller.
func checkUserID(u mockerp.User, userID string) error {
	if userID != "" && userID != u.ID {
		return errUserMismatch
	}
	return nil
}

func processPage(c *gin.Context, fallback int) paginator.PaginateQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("pageSize"))
	q := paginator.PaginateQuery{Page: page, Limit: size}
	q.Adjust(fallback)
	return q
}

func processFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, filterAll) {
		return ""
	}
	return v
}

func (h *handler) processSearchRequest(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return searchReq{}, errInvalidRequest
	}
	req.Keyword = strings.TrimSpace(req.Keyword)
	req.Status = processFilter(req.Status)
	req.page = processPage(c, defaultOrderPageSize)
	return req, nil
}

func (h *handler) processHistoryRequest(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return historyReq{}, errInvalidRequest
	}
	req.Type = processFilter(req.Type)
	req.page = processPage(c, defaultMessagePageSize)
	return req, nil
}

// processUserRequest authenticates and checks a {userId} body. On failure the response is
// already written.
func (h *handler) processUserRequest(c *gin.Context) (mockerp.User, bool) {
	u, err := h.processCaller(c)
	if err != nil {
		fail(c, err)
		return mockerp.User{}, false
	}
	var req userReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, errInvalidRequest)
			return mockerp.User{}, false
		}
	}
	if err := checkUserID(u, req.UserID); err != nil {
		fail(c, err)
		return mockerp.User{}, false
	}
	return u, true
}
