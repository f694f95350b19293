package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
	"orderdesk/internal/auth/repository/memory"
	"orderdesk/pkg/log"
	"orderdesk/pkg/response"
	"orderdesk/pkg/session"
)

type fakeERP struct {
	login      repository.LoginResult
	loginErr   error
	bindOpts   []repository.BindCompanyOptions
	bindErr    error
	profile    auth.Profile
	profileErr error
	calls      map[string]int
}

func (f *fakeERP) WxLogin(_ context.Context, opts repository.WxLoginOptions) (repository.LoginResult, error) {
	f.calls["login"]++
	return f.login, f.loginErr
}

func (f *fakeERP) BindCompany(_ context.Context, opts repository.BindCompanyOptions) (auth.BindOutput, error) {
	f.calls["bind"]++
	f.bindOpts = append(f.bindOpts, opts)
	if f.bindErr != nil {
		return auth.BindOutput{}, f.bindErr
	}
	return auth.BindOutput{Bound: true, Company: auth.Company{CompanyID: "C1", CompanyName: "Acme"}}, nil
}

func (f *fakeERP) GetProfile(context.Context) (auth.Profile, error) {
	f.calls["profile"]++
	return f.profile, f.profileErr
}

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestUseCase(erp *fakeERP) (*implUseCase, session.Store) {
	erp.calls = map[string]int{}
	store := session.NewMemoryStore()
	uc := New(erp, memory.New(time.Minute), store, log.NewNopLogger()).(*implUseCase)
	uc.now = func() time.Time { return testNow }
	return uc, store
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("empty code makes no call", func(t *testing.T) {
		erp := &fakeERP{}
		uc, _ := newTestUseCase(erp)
		_, err := uc.Login(ctx, auth.LoginInput{Code: "  "})
		assert.ErrorIs(t, err, auth.ErrEmptyCode)
		assert.Zero(t, erp.calls["login"])
	})

	t.Run("stores session with server expiry", func(t *testing.T) {
		exp := testNow.Add(48 * time.Hour)
		erp := &fakeERP{
			login:   repository.LoginResult{Token: "tok", OpenID: "o1", UserID: "u1", ExpiresAtMillis: exp.UnixMilli()},
			profile: auth.Profile{Company: auth.Company{CompanyID: "C1"}},
		}
		uc, store := newTestUseCase(erp)

		out, err := uc.Login(ctx, auth.LoginInput{Code: "abc"})
		require.NoError(t, err)
		assert.False(t, out.NeedsBinding)

		sess, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", sess.Token)
		assert.Equal(t, "u1", sess.UserID)
		assert.True(t, sess.ExpiresAt.Equal(exp))
	})

	t.Run("falls back to default ttl", func(t *testing.T) {
		erp := &fakeERP{login: repository.LoginResult{Token: "opaque", UserID: "u1"}}
		uc, store := newTestUseCase(erp)
		_, err := uc.Login(ctx, auth.LoginInput{Code: "abc"})
		require.NoError(t, err)
		sess, _ := store.Get(ctx)
		assert.True(t, sess.ExpiresAt.Equal(testNow.Add(session.DefaultTTL)))
	})

	t.Run("unbound profile asks for binding", func(t *testing.T) {
		erp := &fakeERP{login: repository.LoginResult{Token: "tok", UserID: "u1"}}
		uc, _ := newTestUseCase(erp)
		out, err := uc.Login(ctx, auth.LoginInput{Code: "abc"})
		require.NoError(t, err)
		assert.True(t, out.NeedsBinding)
	})

	t.Run("need invite bind envelope asks for binding", func(t *testing.T) {
		erp := &fakeERP{
			login:      repository.LoginResult{Token: "tok", UserID: "u1"},
			profileErr: &response.DomainError{Code: response.CodeNeedInviteBind, Message: "用户未绑定企业"},
		}
		uc, _ := newTestUseCase(erp)
		out, err := uc.Login(ctx, auth.LoginInput{Code: "abc"})
		require.NoError(t, err)
		assert.True(t, out.NeedsBinding)
	})

	t.Run("missing token", func(t *testing.T) {
		erp := &fakeERP{login: repository.LoginResult{UserID: "u1"}}
		uc, store := newTestUseCase(erp)
		_, err := uc.Login(ctx, auth.LoginInput{Code: "abc"})
		assert.ErrorIs(t, err, auth.ErrMissingToken)
		_, err = store.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("server error leaves store empty", func(t *testing.T) {
		erp := &fakeERP{loginErr: errors.New("boom")}
		uc, store := newTestUseCase(erp)
		_, err := uc.Login(ctx, auth.LoginInput{Code: "abc"})
		assert.Error(t, err)
		_, err = store.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestBindCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("empty invite code makes no call", func(t *testing.T) {
		erp := &fakeERP{}
		uc, _ := newTestUseCase(erp)
		_, err := uc.BindCompany(ctx, " \t")
		assert.ErrorIs(t, err, auth.ErrEmptyInviteCode)
		assert.Zero(t, erp.calls["bind"])
	})

	t.Run("requires login", func(t *testing.T) {
		erp := &fakeERP{}
		uc, _ := newTestUseCase(erp)
		_, err := uc.BindCompany(ctx, "INV-1")
		assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
		assert.ErrorIs(t, err, session.ErrNotLoggedIn)
		assert.Zero(t, erp.calls["bind"])
	})

	t.Run("sends trimmed code with user id and drops cached profile", func(t *testing.T) {
		erp := &fakeERP{profile: auth.Profile{}}
		uc, store := newTestUseCase(erp)
		require.NoError(t, store.Put(ctx, session.Session{Token: "t", UserID: "u1", ExpiresAt: testNow.Add(time.Hour)}))

		_, err := uc.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, erp.calls["profile"])

		out, err := uc.BindCompany(ctx, "  INV-1 ")
		require.NoError(t, err)
		assert.True(t, out.Bound)
		assert.Equal(t, []repository.BindCompanyOptions{{InviteCode: "INV-1", UserID: "u1"}}, erp.bindOpts)

		_, err = uc.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, erp.calls["profile"], "profile refetched after binding")
	})
}

func TestProfileCaching(t *testing.T) {
	ctx := context.Background()
	erp := &fakeERP{profile: auth.Profile{Company: auth.Company{CompanyID: "C1"}}}
	uc, store := newTestUseCase(erp)
	require.NoError(t, store.Put(ctx, session.Session{Token: "t", UserID: "u1", ExpiresAt: testNow.Add(time.Hour)}))

	for i := 0; i < 3; i++ {
		p, err := uc.Profile(ctx)
		require.NoError(t, err)
		assert.True(t, p.IsBound())
	}
	assert.Equal(t, 1, erp.calls["profile"])
}

func TestProfileNeedsBinding(t *testing.T) {
	ctx := context.Background()
	erp := &fakeERP{profileErr: &response.DomainError{Code: response.CodeNeedInviteBind}}
	uc, store := newTestUseCase(erp)
	require.NoError(t, store.Put(ctx, session.Session{Token: "t", UserID: "u1", ExpiresAt: testNow.Add(time.Hour)}))

	_, err := uc.Profile(ctx)
	assert.ErrorIs(t, err, response.ErrNeedInviteBind)
}

func TestLogoutAndStatus(t *testing.T) {
	ctx := context.Background()
	uc, store := newTestUseCase(&fakeERP{})

	st, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.LoggedIn)

	require.NoError(t, store.Put(ctx, session.Session{Token: "t", UserID: "u1", ExpiresAt: testNow.Add(time.Hour)}))
	st, err = uc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.LoggedIn)
	assert.Equal(t, "u1", st.UserID)

	require.NoError(t, store.Put(ctx, session.Session{Token: "t", UserID: "u1", ExpiresAt: testNow}))
	st, err = uc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.LoggedIn)
	assert.True(t, st.Expired)

	require.NoError(t, uc.Logout(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, session.ErrNotFound)
	require.NoError(t, uc.Logout(ctx), "logout is idempotent")
}
