package erp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/order/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
	"orderdesk/pkg/response"
)

func newTestRepo(t *testing.T, h http.HandlerFunc) repository.ERPRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client := pkghttp.NewClient(pkghttp.ClientConfig{BaseURL: srv.URL, Retries: 0}, nil)
	return New(client, log.NewNopLogger())
}

func TestSearchOrders(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/search", r.URL.Path)
		assert.Equal(t, "SO", r.URL.Query().Get("keyword"))
		assert.False(t, r.URL.Query().Has("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"查询成功","timestamp":1,"data":{
			"orders":[{"order_id":17,"order_no":"SO-17","customer_name":"Acme","order_date":"2026-05-01","status":2}],
			"total":11,"page":2,"pageSize":10}}`))
	})

	res, err := repo.SearchOrders(context.Background(), repository.SearchOptions{Keyword: "SO", Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "17", res.Orders[0].OrderID)
	assert.Equal(t, "2", res.Orders[0].Status)
	assert.EqualValues(t, 11, res.Total)
	assert.Nil(t, res.HasMore)
}

func TestSearchOrdersNeedsBinding(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"code":"NEED_INVITE_BIND","message":"用户未绑定企业","timestamp":1}`))
	})

	_, err := repo.SearchOrders(context.Background(), repository.SearchOptions{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, response.ErrNeedInviteBind)

	var httpErr *pkghttp.HTTPError
	assert.NotErrorAs(t, err, &httpErr)
}

func TestGetDetail(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/SO%2F1/detail", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","timestamp":1,"data":{
			"order_no":"SO/1","customer_name":"Acme","rmb_amount":1234.5,"created_at":"2026-05-01","status":"shipped",
			"delivery_orders":[{"delivery_date":"2026-05-09","logistics_company":"SF","logistics_code":"SF1",
				"attachments":["` + "`https://x/a.png`" + `"],"products":[{"productName":"Bolt","spec":"M6","quantity":200}]}]}}`))
	})

	d, err := repo.GetDetail(context.Background(), "SO/1")
	require.NoError(t, err)
	assert.Equal(t, "SO/1", d.OrderNo)
	assert.InDelta(t, 1234.5, d.RMBAmount, 0.001)
	assert.Equal(t, "2026-05-01", d.OrderDate)
	require.Len(t, d.DeliveryOrders, 1)
	assert.Equal(t, "SF", d.DeliveryOrders[0].LogisticsCompany)
	assert.Equal(t, "Bolt", d.DeliveryOrders[0].Products[0].ProductName)
	assert.EqualValues(t, 200, d.DeliveryOrders[0].Products[0].Quantity)
}

func TestGetDetailHTTPError(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"订单不存在"}`))
	})

	_, err := repo.GetDetail(context.Background(), "nope")
	var httpErr *pkghttp.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetMaterialsAndProgress(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders/o1/materials":
			_, _ = w.Write([]byte(`{"success":true,"data":{"materials":[{"material_id":"m1","material_name":"Steel","quantity":5,"status":"completed"}]}}`))
		case "/api/materials/m1/progress":
			_, _ = w.Write([]byte(`{"success":true,"data":{"material_id":"m1","status":"producing","progress":49.6,
				"steps":[{"name":"cut","status":"completed","updated_at":"2026-05-02"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ms, err := repo.GetMaterials(context.Background(), "o1")
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "Steel", ms[0].MaterialName)

	p, err := repo.GetMaterialProgress(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 50, p.Percent)
	require.Len(t, p.Steps, 1)
	assert.Equal(t, "cut", p.Steps[0].Name)
}
