package cli

import (
	"fmt"
	"io"

	"orderdesk/internal/message"
	"orderdesk/pkg/console"

	"github.com/fatih/color"
)

const timeLayout = "2006-01-02 15:04"

var unreadMark = color.New(color.FgRed, color.Bold).Sprint("●")

type historyReq struct {
	Page     int
	PageSize int
	Type     string
}

func (r historyReq) toInput() message.HistoryInput {
	return message.HistoryInput{Page: r.Page, PageSize: r.PageSize, Type: r.Type}
}

func printMessage(w io.Writer, m message.Message) {
	mark := " "
	if !m.IsRead {
		mark = unreadMark
	}
	title := fmt.Sprintf("%s [%s] %s", mark, m.TypeText, m.Title)
	if !m.CreateTime.IsZero() {
		title += "  " + m.CreateTime.Local().Format(timeLayout)
	}
	console.Title(w, title)

	fields := []console.Field{
		{Key: "ID", Value: m.MessageID},
		{Key: "Detail", Value: m.Description},
	}
	for _, f := range m.Data {
		fields = append(fields, console.Field{Key: message.FieldLabel(f.Key), Value: f.Value})
	}
	if m.Action != nil && m.Action.OrderNo != "" {
		footer := m.Footer
		if footer == "" {
			footer = message.DefaultFooter
		}
		fields = append(fields, console.Field{Key: footer, Value: "orderdesk orders detail " + m.Action.OrderNo})
	}
	console.Fields(w, fields...)
}

func pageFooter(out message.HistoryOutput) string {
	footer := fmt.Sprintf("page %d, unread %d", out.Page, out.UnreadCount)
	if out.HasMore {
		footer += fmt.Sprintf(", next: --page %d", out.Page+1)
	}
	return footer
}
