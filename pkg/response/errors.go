package response

import (
	"errors"
	"strings"
)

var (
	// ErrDomain matches every *DomainError.
	ErrDomain = errors.New("response: domain error")
	// ErrNeedInviteBind matches a *DomainError that requires company binding.
	ErrNeedInviteBind = errors.New("response: company binding required")
	ErrMalformed      = errors.New("response: malformed envelope")
)

// Error implements error.
func (e *DomainError) Error() string {
	if e.Code != "" {
		return "response: " + e.Code + ": " + e.Message
	}
	return "response: " + e.Message
}

// NeedsBinding reports whether the server asked for the invite-code binding flow.
func (e *DomainError) NeedsBinding() bool {
	return e.Code == CodeNeedInviteBind || strings.Contains(e.Message, notBoundHint)
}

// Is supports errors.Is against ErrDomain and ErrNeedInviteBind.
func (e *DomainError) Is(target error) bool {
	switch target {
	case ErrDomain:
		return true
	case ErrNeedInviteBind:
		return e.NeedsBinding()
	default:
		return false
	}
}
