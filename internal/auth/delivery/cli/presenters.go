package cli

import (
	"time"

	"orderdesk/internal/auth"
	"orderdesk/pkg/console"
)

const timeLayout = "2006-01-02 15:04"

type loginReq struct {
	Code      string
	NickName  string
	AvatarURL string
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Code: r.Code, NickName: r.NickName, AvatarURL: r.AvatarURL}
}

func sessionFields(userID, openID string, expiresAt time.Time) []console.Field {
	fields := []console.Field{
		{Key: "User", Value: userID},
		{Key: "OpenID", Value: openID},
	}
	if !expiresAt.IsZero() {
		fields = append(fields, console.Field{Key: "Expires", Value: expiresAt.Local().Format(timeLayout)})
	}
	return fields
}

func companyFields(p auth.Profile) []console.Field {
	fields := []console.Field{
		{Key: "Company", Value: p.Company.CompanyName},
		{Key: "Company ID", Value: p.Company.CompanyID},
		{Key: "Customer ID", Value: p.Company.CustomerID},
	}
	if !p.BoundAt.IsZero() {
		fields = append(fields, console.Field{Key: "Bound at", Value: p.BoundAt.Local().Format(timeLayout)})
	}
	return fields
}
