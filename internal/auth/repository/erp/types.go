package erp

import (
	"orderdesk/internal/auth"
	"orderdesk/pkg/response"
	"orderdesk/pkg/util"
)

type wxLoginRequest struct {
	Code     string     `json:"code"`
	UserInfo wxUserInfo `json:"userInfo"`
}

type wxUserInfo struct {
	NickName  string `json:"nickName,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type wxLoginData struct {
	Token     string      `json:"token"`
	OpenID    string      `json:"openid"`
	UnionID   string      `json:"unionid"`
	UserID    response.ID `json:"userId"`
	ExpiresAt int64       `json:"expiresAt"`
}

type bindCompanyRequest struct {
	InviteCode string `json:"inviteCode"`
	UserID     string `json:"userId"`
}

type companyData struct {
	CompanyID   response.ID `json:"companyId"`
	CompanyName string      `json:"companyName"`
	CustomerID  response.ID `json:"customerId"`
}

func (c companyData) toDomain() auth.Company {
	return auth.Company{
		CompanyID:   c.CompanyID.String(),
		CompanyName: c.CompanyName,
		CustomerID:  c.CustomerID.String(),
	}
}

type bindCompanyData struct {
	BindStatus  bool        `json:"bindStatus"`
	CompanyInfo companyData `json:"companyInfo"`
}

type erpBindingData struct {
	companyData
	BoundAt int64 `json:"boundAt"`
}

type profileData struct {
	ERPBinding erpBindingData `json:"erpBinding"`
}

func (p profileData) toDomain() auth.Profile {
	out := auth.Profile{Company: p.ERPBinding.toDomain()}
	if p.ERPBinding.BoundAt > 0 {
		out.BoundAt = util.MillisecondsToTime(p.ERPBinding.BoundAt)
	}
	return out
}
