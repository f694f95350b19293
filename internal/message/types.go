package message

import "time"

// HistoryInput - page of the message feed. Type "all" or "" means every type.
type HistoryInput struct {
	Page     int
	PageSize int
	Type     string
}

// HistoryOutput - one page of messages
type HistoryOutput struct {
	Messages    []Message
	Page        int
	HasMore     bool
	UnreadCount int
}

// Message - feed entry
type Message struct {
	MessageID   string
	Type        string
	TypeText    string
	Title       string
	Description string
	// Data holds the labelled key/value pairs of the message body, sorted by key.
	Data       []Field
	Footer     string
	IsRead     bool
	CreateTime time.Time
	Action     *Action
}

// Field - labelled value in a message body
type Field struct {
	Key   string
	Value string
}

// Action - navigation target attached to a message
type Action struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	URL     string `json:"url,omitempty"`
	OrderID string `json:"orderId,omitempty"`
	OrderNo string `json:"orderNo,omitempty"`
}
