package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdesk/pkg/locale"
)

func TestLocalize(t *testing.T) {
	assert.Equal(t, "登录已过期，请重新登录", Localize("zh", MsgAuthExpired, nil))
	assert.Equal(t, "Your session has expired, please log in again", Localize("en", MsgAuthExpired, nil))
	assert.Equal(t, "Request failed (404): not found",
		Localize("en", MsgHTTP, map[string]any{"Code": 404, "Message": "not found"}))
	assert.Equal(t, "用户未登录", Localize("fr", MsgNotLoggedIn, nil), "unsupported languages fall back to zh")
	assert.Equal(t, "no.such.id", Localize("en", "no.such.id", nil))
}

func TestCataloguesAreComplete(t *testing.T) {
	zh := map[string]bool{}
	for _, m := range zhMessages {
		zh[m.ID] = true
	}
	for _, m := range enMessages {
		assert.True(t, zh[m.ID], "missing zh translation for %s", m.ID)
	}
	assert.Len(t, enMessages, len(zhMessages))
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "已退出登录", FromContext(ctx, MsgLoggedOut, nil))
	assert.Equal(t, "Logged out", FromContext(locale.SetLocaleToContext(ctx, locale.EN), MsgLoggedOut, nil))
}
