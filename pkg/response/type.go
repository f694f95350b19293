package response

import "encoding/json"

// Envelope is the ERP API response body: {success, message, timestamp, code?, data?}.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Timestamp int64           `json:"timestamp,omitempty"`
	Code      string          `json:"code,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// DomainError is a well-formed reply with success=false. It is not a transport or HTTP
// failure; callers branch on it (see ErrNeedInviteBind).
type DomainError struct {
	Code    string
	Message string
}
