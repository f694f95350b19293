package locale

const (
	// ZH is Simplified Chinese.
	ZH = "zh"
	// EN is English.
	EN = "en"
)

// LangList contains all supported language codes.
var LangList = []string{ZH, EN}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = ZH
