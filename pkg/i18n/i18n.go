package i18n

import (
	"context"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"orderdesk/pkg/locale"
)

var (
	bundle     *goi18n.Bundle
	bundleOnce sync.Once
)

// Init builds the message bundle. Safe to call more than once.
func Init() {
	bundleOnce.Do(func() {
		b := goi18n.NewBundle(language.Chinese)
		// the catalogues are static; AddMessages only fails on duplicate plural forms
		_ = b.AddMessages(language.Chinese, zhMessages...)
		_ = b.AddMessages(language.English, enMessages...)
		bundle = b
	})
}

// NewLocalizer returns a localizer for lang, falling back to Chinese.
func NewLocalizer(lang string) *goi18n.Localizer {
	Init()
	return goi18n.NewLocalizer(bundle, locale.ParseLang(lang), locale.ZH)
}

// Localize renders messageID in lang. Unknown IDs render as the ID itself.
func Localize(lang, messageID string, data map[string]any) string {
	msg, err := NewLocalizer(lang).Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// FromContext localizes messageID in the language carried by ctx.
func FromContext(ctx context.Context, messageID string, data map[string]any) string {
	return Localize(locale.GetLang(ctx), messageID, data)
}
