package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// requestIDKey is the structured field carrying the per-call request id.
	requestIDKey = "request_id"
)
