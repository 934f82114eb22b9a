package cli

import (
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable("PATH", "LAYOUT")
	table.AddRow("/auth/login", "auth")
	table.AddRow("/", "page")

	want := "PATH         LAYOUT\n" +
		"-----------  ------\n" +
		"/auth/login  auth\n" +
		"/            page\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableAddRowPadsAndTruncates(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("only")
	table.AddRow("1", "2", "3")

	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("short row = %q, want padded", table.rows[0])
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("long row = %q, want truncated", table.rows[1])
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight() = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight() = %q", got)
	}
}
