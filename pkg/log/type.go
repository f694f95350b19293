package log

import "go.uber.org/zap"

// ZapConfig mirrors the logger section of the application config.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}
