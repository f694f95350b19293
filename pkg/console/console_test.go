package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "done")
	Fail(&buf, "failed", "cause")
	Fail(&buf, "same", "same")
	Hint(&buf, "try again")

	assert.Equal(t, "✓ done\n⨯ failed\n  cause\n⨯ same\n• try again\n", buf.String())
}

func TestFieldsSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Fields(&buf, Field{"Order", "SO-1"}, Field{"Remark", ""}, Field{"Status", "shipped"})

	out := buf.String()
	assert.Contains(t, out, "Order:")
	assert.NotContains(t, out, "Remark")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestTableAligns(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"NO", "STATUS"}, [][]string{{"SO-1", "a"}, {"SO-100", "b"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Index(lines[0], "STATUS"), strings.Index(lines[1], "a"))
	assert.Equal(t, strings.Index(lines[1], "a"), strings.Index(lines[2], "b"))
}
