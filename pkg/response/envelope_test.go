package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	type page struct {
		HasMore bool `json:"hasMore"`
	}

	t.Run("success decodes data", func(t *testing.T) {
		var out page
		env, err := Unwrap([]byte(`{"success":true,"message":"ok","data":{"hasMore":true}}`), &out)
		require.NoError(t, err)
		assert.Equal(t, "ok", env.Message)
		assert.True(t, out.HasMore)
	})

	t.Run("need invite bind by code", func(t *testing.T) {
		_, err := Unwrap([]byte(`{"success":false,"message":"请先绑定","code":"NEED_INVITE_BIND"}`), nil)
		assert.ErrorIs(t, err, ErrNeedInviteBind)
		assert.ErrorIs(t, err, ErrDomain)

		var de *DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, CodeNeedInviteBind, de.Code)
	})

	t.Run("need invite bind by legacy message", func(t *testing.T) {
		_, err := Unwrap([]byte(`{"success":false,"message":"用户未绑定企业"}`), nil)
		assert.ErrorIs(t, err, ErrNeedInviteBind)
	})

	t.Run("plain domain failure", func(t *testing.T) {
		_, err := Unwrap([]byte(`{"success":false,"message":"邀请码无效"}`), nil)
		assert.ErrorIs(t, err, ErrDomain)
		assert.NotErrorIs(t, err, ErrNeedInviteBind)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Unwrap([]byte(`<html>`), nil)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("null data", func(t *testing.T) {
		out := page{HasMore: true}
		_, err := Unwrap([]byte(`{"success":true,"data":null}`), &out)
		require.NoError(t, err)
		assert.True(t, out.HasMore)
	})
}
