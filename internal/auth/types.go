package auth

import (
	"time"

	"orderdesk/pkg/session"
)

// LoginInput - one-time login code plus the optional display identity sent as userInfo.
type LoginInput struct {
	Code      string
	NickName  string
	AvatarURL string
}

// LoginOutput - stored session and the follow-up profile check.
type LoginOutput struct {
	Session session.Session
	Profile Profile
	// NeedsBinding is true when the account has no company yet and the invite-code flow should run.
	NeedsBinding bool
}

// Company - ERP customer a user is bound to.
type Company struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	CustomerID  string `json:"customerId"`
}

// BindOutput - result of binding with an invite code.
type BindOutput struct {
	Bound   bool    `json:"bindStatus"`
	Company Company `json:"companyInfo"`
	Message string  `json:"-"`
}

// Profile - current user's ERP binding.
type Profile struct {
	Company Company   `json:"company"`
	BoundAt time.Time `json:"boundAt"`
}

// IsBound reports whether the profile carries a company binding.
func (p Profile) IsBound() bool {
	return p.Company.CompanyID != "" || p.Company.CustomerID != ""
}

// StatusOutput - local view of the stored session. No network call is involved.
type StatusOutput struct {
	LoggedIn  bool
	Expired   bool
	OpenID    string
	UserID    string
	ExpiresAt time.Time
}
