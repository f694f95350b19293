package mockerp

import "errors"

var (
	ErrUnknownUser       = errors.New("mockerp: user does not exist")
	ErrInvalidInviteCode = errors.New("mockerp: invite code is invalid")
	ErrNotBound          = errors.New("mockerp: user is not bound to a company")
	ErrOrderNotFound     = errors.New("mockerp: order not found")
	ErrMaterialNotFound  = errors.New("mockerp: material not found")
	ErrMessageNotFound   = errors.New("mockerp: message not found")
)
