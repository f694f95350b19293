package erp

import (
	"encoding/json"
	"fmt"
	"sort"

	"orderdesk/internal/message"
	"orderdesk/pkg/response"
	"orderdesk/pkg/util"
)

type messageData struct {
	MessageID   response.ID     `json:"message_id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data"`
	Footer      string          `json:"footer"`
	IsRead      bool            `json:"is_read"`
	CreateTime  string          `json:"create_time"`
	Action      *message.Action `json:"action"`
}

func (m messageData) toDomain() message.Message {
	out := message.Message{
		MessageID:   m.MessageID.String(),
		Type:        m.Type,
		Title:       m.Title,
		Description: m.Description,
		Data:        fieldsFromRaw(m.Data),
		Footer:      m.Footer,
		IsRead:      m.IsRead,
		Action:      m.Action,
	}
	if t, ok := util.ParseTime(m.CreateTime); ok {
		out.CreateTime = t
	}
	return out
}

// fieldsFromRaw flattens a JSON object into sorted key/value pairs. Non-objects yield nil.
func fieldsFromRaw(raw json.RawMessage) []message.Field {
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) == 0 {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]message.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, message.Field{Key: k, Value: stringify(obj[k])})
	}
	return fields
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return fmt.Sprint(x)
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

type historyData struct {
	Messages    []messageData `json:"messages"`
	HasMore     *bool         `json:"hasMore"`
	Total       int64         `json:"total"`
	UnreadCount *int          `json:"unreadCount"`
}

type userRequest struct {
	UserID string `json:"userId"`
}

type markReadRequest struct {
	UserID    string `json:"userId"`
	MessageID string `json:"messageId"`
}
