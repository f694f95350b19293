// Package console writes colored, aligned CLI output.
package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	bold    = color.New(color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	hint    = color.New(color.FgYellow)
	faint   = color.New(color.Faint)
	header  = color.New(color.FgBlue, color.Bold)
)

// Success prints a green line.
func Success(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", success.Sprint("✓"), msg)
}

// Fail prints a red line, followed by detail in faint text when it is not empty.
func Fail(w io.Writer, msg, detail string) {
	fmt.Fprintf(w, "%s %s\n", failure.Sprint("⨯"), msg)
	if detail != "" && detail != msg {
		fmt.Fprintf(w, "  %s\n", faint.Sprint(detail))
	}
}

// Hint prints a yellow line.
func Hint(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", hint.Sprint("•"), msg)
}

// Title prints a bold section title.
func Title(w io.Writer, title string) {
	fmt.Fprintln(w, bold.Sprint(title))
}

// Field is one line of a key/value block.
type Field struct {
	Key   string
	Value string
}

// Fields prints an aligned key/value block. Empty values are skipped.
func Fields(w io.Writer, fields ...Field) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(tw, "  %s:\t%s\n", f.Key, f.Value)
	}
	tw.Flush()
}

// Table prints rows under headers with left-aligned columns and no borders.
func Table(w io.Writer, headers []string, rows [][]string) {
	colored := make([]string, len(headers))
	for i, h := range headers {
		colored[i] = header.Sprint(h)
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader(colored)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetCenterSeparator("")
	t.SetColumnSeparator("")
	t.SetRowSeparator("")
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)
	t.AppendBulk(rows)
	t.Render()
}
