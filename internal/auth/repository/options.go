package repository

// WxLoginOptions - body of the code-for-token exchange
type WxLoginOptions struct {
	Code     string
	NickName string
	Avatar   string
}

// BindCompanyOptions - invite code and the user it binds
type BindCompanyOptions struct {
	InviteCode string
	UserID     string
}

// LoginResult - identity issued by the server
type LoginResult struct {
	Token   string
	OpenID  string
	UnionID string
	UserID  string
	// ExpiresAtMillis is 0 when the server did not send an expiry.
	ExpiresAtMillis int64
}
