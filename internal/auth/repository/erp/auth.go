package erp

import (
	"context"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/response"
)

func (r *implERPRepository) WxLogin(ctx context.Context, opts repository.WxLoginOptions) (repository.LoginResult, error) {
	desc, err := pkghttp.NewPOSTJSONDescriptor(pathWxLogin, wxLoginRequest{
		Code:     opts.Code,
		UserInfo: wxUserInfo{NickName: opts.NickName, AvatarURL: opts.Avatar},
	})
	if err != nil {
		return repository.LoginResult{}, err
	}

	resp, err := r.client.Execute(ctx, desc)
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.erp.WxLogin: %v", err)
		return repository.LoginResult{}, err
	}

	var data wxLoginData
	if _, err := response.Unwrap(resp.Body, &data); err != nil {
		r.l.Warnf(ctx, "auth.repository.erp.WxLogin: %v", err)
		return repository.LoginResult{}, err
	}

	return repository.LoginResult{
		Token:           data.Token,
		OpenID:          data.OpenID,
		UnionID:         data.UnionID,
		UserID:          data.UserID.String(),
		ExpiresAtMillis: data.ExpiresAt,
	}, nil
}

func (r *implERPRepository) BindCompany(ctx context.Context, opts repository.BindCompanyOptions) (auth.BindOutput, error) {
	desc, err := pkghttp.NewPOSTJSONDescriptor(pathBindCompany, bindCompanyRequest{
		InviteCode: opts.InviteCode,
		UserID:     opts.UserID,
	})
	if err != nil {
		return auth.BindOutput{}, err
	}

	resp, err := r.client.Execute(ctx, desc)
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.erp.BindCompany: %v", err)
		return auth.BindOutput{}, err
	}

	var data bindCompanyData
	env, err := response.Unwrap(resp.Body, &data)
	if err != nil {
		r.l.Warnf(ctx, "auth.repository.erp.BindCompany: %v", err)
		return auth.BindOutput{}, err
	}

	return auth.BindOutput{
		Bound:   data.BindStatus,
		Company: data.CompanyInfo.toDomain(),
		Message: env.Message,
	}, nil
}

func (r *implERPRepository) GetProfile(ctx context.Context) (auth.Profile, error) {
	resp, err := r.client.Execute(ctx, pkghttp.NewGETDescriptor(pathProfile, nil))
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.erp.GetProfile: %v", err)
		return auth.Profile{}, err
	}

	var data profileData
	if _, err := response.Unwrap(resp.Body, &data); err != nil {
		return auth.Profile{}, err
	}
	return data.toDomain(), nil
}
