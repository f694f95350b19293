package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	BindCompany(ctx context.Context, inviteCode string) (BindOutput, error)
	Profile(ctx context.Context) (Profile, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (StatusOutput, error)
}
