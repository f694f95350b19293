package http

import (
	"time"

	"orderdesk/internal/mockerp"
	"orderdesk/pkg/paginator"
	"orderdesk/pkg/util"
)

const (
	hourLayout    = "2006-01-02 15:00"
	uploadURLPath = "/files/"
)

// ---- requests ----

type wxLoginReq struct {
	Code     string `json:"code"`
	UserInfo struct {
		NickName  string `json:"nickName"`
		AvatarURL string `json:"avatarUrl"`
	} `json:"userInfo"`
}

type bindCompanyReq struct {
	InviteCode string `json:"inviteCode" binding:"required"`
	UserID     string `json:"userId"`
}

type searchReq struct {
	Keyword string `form:"keyword"`
	Status  string `form:"status"`
	page    paginator.PaginateQuery
}

type historyReq struct {
	UserID string `form:"userId"`
	Type   string `form:"type"`
	page   paginator.PaginateQuery
}

type userReq struct {
	UserID string `json:"userId"`
}

type markReadReq struct {
	UserID    string `json:"userId"`
	MessageID string `json:"messageId" binding:"required"`
}

type errorReportReq struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
	OpenID    string `json:"openid"`
}

// ---- responses ----

type wxLoginResp struct {
	Token     string `json:"token"`
	OpenID    string `json:"openid"`
	UnionID   string `json:"unionid"`
	UserID    string `json:"userId"`
	ExpiresAt int64  `json:"expiresAt"`
}

type companyResp struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	CustomerID  string `json:"customerId"`
}

type bindCompanyResp struct {
	BindStatus  bool        `json:"bindStatus"`
	CompanyInfo companyResp `json:"companyInfo"`
}

type erpBindingResp struct {
	companyResp
	BoundAt int64 `json:"boundAt"`
}

type profileResp struct {
	UserID     string         `json:"userId"`
	OpenID     string         `json:"openid"`
	NickName   string         `json:"nickName,omitempty"`
	ERPBinding erpBindingResp `json:"erpBinding"`
}

type materialResp struct {
	MaterialID       string  `json:"material_id"`
	MaterialCode     string  `json:"material_code"`
	MaterialName     string  `json:"material_name"`
	Quantity         float64 `json:"quantity"`
	ProducedQuantity float64 `json:"produced_quantity"`
	ShippedQuantity  float64 `json:"shipped_quantity"`
	Status           string  `json:"status"`
}

type orderResp struct {
	OrderID      string         `json:"order_id"`
	OrderNo      string         `json:"order_no"`
	CustomerName string         `json:"customer_name"`
	OrderDate    string         `json:"order_date"`
	Status       string         `json:"status"`
	Materials    []materialResp `json:"materials"`
}

type searchResp struct {
	Orders   []orderResp `json:"orders"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	HasMore  bool        `json:"hasMore"`
}

type productResp struct {
	ProductName string  `json:"productName"`
	Spec        string  `json:"spec"`
	Quantity    float64 `json:"quantity"`
}

type deliveryOrderResp struct {
	DeliveryDate     string        `json:"delivery_date"`
	LogisticsCompany string        `json:"logistics_company"`
	LogisticsCode    string        `json:"logistics_code"`
	Address          string        `json:"address"`
	Remark           string        `json:"remark"`
	Attachments      []string      `json:"attachments"`
	Products         []productResp `json:"products"`
}

type detailResp struct {
	OrderID        string              `json:"order_id"`
	OrderNo        string              `json:"order_no"`
	CustomerName   string              `json:"customer_name"`
	RMBAmount      float64             `json:"rmb_amount"`
	CreatedAt      string              `json:"created_at"`
	Status         string              `json:"status"`
	DeliveryOrders []deliveryOrderResp `json:"delivery_orders"`
	Materials      []materialResp      `json:"materials"`
}

type materialsResp struct {
	Materials []materialResp `json:"materials"`
}

type stepResp struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updated_at"`
}

type progressResp struct {
	MaterialID   string     `json:"material_id"`
	MaterialName string     `json:"material_name"`
	Status       string     `json:"status"`
	Progress     float64    `json:"progress"`
	Steps        []stepResp `json:"steps"`
}

type actionResp struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	OrderNo string `json:"orderNo,omitempty"`
}

type messageResp struct {
	MessageID   string            `json:"message_id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Data        map[string]string `json:"data,omitempty"`
	IsRead      bool              `json:"is_read"`
	CreateTime  string            `json:"create_time"`
	Action      *actionResp       `json:"action,omitempty"`
}

type historyResp struct {
	Messages    []messageResp `json:"messages"`
	HasMore     bool          `json:"hasMore"`
	UnreadCount int           `json:"unreadCount"`
}

type changedResp struct {
	Changed int `json:"changed"`
}

type uploadResp struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

type healthResp struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

type endpointStatResp struct {
	Endpoint        string  `json:"endpoint"`
	TotalCalls      int64   `json:"totalCalls"`
	AvgResponseTime float64 `json:"avgResponseTime"`
	ErrorRate       float64 `json:"errorRate"`
	SuccessRate     float64 `json:"successRate"`
}

type erpStatusResp struct {
	Stats     []endpointStatResp `json:"stats"`
	CheckTime string             `json:"checkTime"`
}

type perfStatResp struct {
	Hour            string  `json:"hour,omitempty"`
	Endpoint        string  `json:"endpoint,omitempty"`
	TotalCalls      int64   `json:"totalCalls"`
	AvgResponseTime float64 `json:"avgResponseTime"`
	MaxResponseTime float64 `json:"maxResponseTime"`
	ErrorCalls      int64   `json:"errorCalls"`
	ErrorRate       float64 `json:"errorRate"`
}

type performanceResp struct {
	HourlyStats   []perfStatResp `json:"hourlyStats"`
	EndpointStats []perfStatResp `json:"endpointStats"`
}

// ---- converters ----

func newWxLoginResp(u mockerp.User, token string, exp time.Time) wxLoginResp {
	return wxLoginResp{
		Token:     token,
		OpenID:    u.OpenID,
		UnionID:   u.UnionID,
		UserID:    u.ID,
		ExpiresAt: exp.UnixMilli(),
	}
}

func newCompanyResp(c mockerp.Company) companyResp {
	return companyResp{CompanyID: c.Code, CompanyName: c.Name, CustomerID: c.CustomerID}
}

func newProfileResp(u mockerp.User, b mockerp.Binding) profileResp {
	return profileResp{
		UserID:   u.ID,
		OpenID:   u.OpenID,
		NickName: u.NickName,
		ERPBinding: erpBindingResp{
			companyResp: newCompanyResp(b.Company),
			BoundAt:     b.BoundAt.UnixMilli(),
		},
	}
}

func newMaterialResps(in []mockerp.Material) []materialResp {
	out := make([]materialResp, 0, len(in))
	for _, m := range in {
		out = append(out, materialResp{
			MaterialID:       m.ID,
			MaterialCode:     m.Code,
			MaterialName:     m.Name,
			Quantity:         m.Quantity,
			ProducedQuantity: m.ProducedQuantity,
			ShippedQuantity:  m.ShippedQuantity,
			Status:           m.Status,
		})
	}
	return out
}

func newSearchResp(orders []mockerp.Order, total int64, page paginator.PaginateQuery) searchResp {
	resp := searchResp{
		Orders:   make([]orderResp, 0, len(orders)),
		Total:    total,
		Page:     page.Page,
		PageSize: page.Limit,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, orderResp{
			OrderID:      o.ID,
			OrderNo:      o.No,
			CustomerName: o.CustomerName,
			OrderDate:    util.DateToStr(o.Date),
			Status:       o.Status,
			Materials:    newMaterialResps(o.Materials),
		})
	}
	resp.HasMore = paginator.Paginator{
		Total:       total,
		Count:       len(orders),
		PerPage:     page.Limit,
		CurrentPage: page.Page,
	}.HasNextPage()
	return resp
}

func newDetailResp(o mockerp.Order) detailResp {
	resp := detailResp{
		OrderID:        o.ID,
		OrderNo:        o.No,
		CustomerName:   o.CustomerName,
		RMBAmount:      o.RMBAmount,
		CreatedAt:      util.DateTimeToStr(o.Date),
		Status:         o.Status,
		DeliveryOrders: make([]deliveryOrderResp, 0, len(o.DeliveryOrders)),
		Materials:      newMaterialResps(o.Materials),
	}
	for _, d := range o.DeliveryOrders {
		do := deliveryOrderResp{
			DeliveryDate:     util.DateTimeToStr(d.Date),
			LogisticsCompany: d.LogisticsCompany,
			LogisticsCode:    d.LogisticsCode,
			Address:          d.Address,
			Remark:           d.Remark,
			Attachments:      d.Attachments,
		}
		for _, p := range d.Products {
			do.Products = append(do.Products, productResp{ProductName: p.Name, Spec: p.Spec, Quantity: p.Quantity})
		}
		resp.DeliveryOrders = append(resp.DeliveryOrders, do)
	}
	return resp
}

// newProgressResp reports progress as the share of completed steps.
func newProgressResp(m mockerp.Material) progressResp {
	resp := progressResp{
		MaterialID:   m.ID,
		MaterialName: m.Name,
		Status:       m.Status,
		Steps:        make([]stepResp, 0, len(m.Steps)),
	}
	done := 0
	for _, s := range m.Steps {
		if s.Status == mockerp.StepCompleted {
			done++
		}
		resp.Steps = append(resp.Steps, stepResp{
			Name:      s.Name,
			Status:    s.Status,
			UpdatedAt: util.DateTimeToStr(s.UpdatedAt),
		})
	}
	if len(m.Steps) > 0 {
		resp.Progress = float64(done) / float64(len(m.Steps)) * 100
	}
	return resp
}

func newHistoryResp(msgs []mockerp.Message, hasMore bool, unread int) historyResp {
	resp := historyResp{
		Messages:    make([]messageResp, 0, len(msgs)),
		HasMore:     hasMore,
		UnreadCount: unread,
	}
	for _, m := range msgs {
		mr := messageResp{
			MessageID:   m.ID,
			Type:        m.Type,
			Title:       m.Title,
			Description: m.Description,
			Data:        m.Data,
			IsRead:      m.IsRead,
			CreateTime:  util.DateTimeToStr(m.CreatedAt),
		}
		if m.OrderNo != "" {
			mr.Action = &actionResp{Type: "order", Text: "查看订单", OrderNo: m.OrderNo}
		}
		resp.Messages = append(resp.Messages, mr)
	}
	return resp
}

func newUploadResp(u mockerp.Upload) uploadResp {
	return uploadResp{FileID: u.ID, FileName: u.Name, URL: uploadURLPath + u.ID, Size: u.Size}
}

func newEndpointStatResp(s mockerp.EndpointStats) endpointStatResp {
	rate := s.ErrorRate()
	return endpointStatResp{
		Endpoint:        s.Label,
		TotalCalls:      s.TotalCalls,
		AvgResponseTime: s.AvgMs,
		ErrorRate:       rate,
		SuccessRate:     100 - rate,
	}
}

func newPerfStatResp(s mockerp.EndpointStats, hourly bool) perfStatResp {
	resp := perfStatResp{
		TotalCalls:      s.TotalCalls,
		AvgResponseTime: s.AvgMs,
		MaxResponseTime: s.MaxMs,
		ErrorCalls:      s.ErrorCalls,
		ErrorRate:       s.ErrorRate(),
	}
	if hourly {
		resp.Hour = s.Label
	} else {
		resp.Endpoint = s.Label
	}
	return resp
}
