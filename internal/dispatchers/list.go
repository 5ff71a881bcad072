package dispatchers

import "strings"

const (
	listNameHeader = "Command"
	listHelpHeader = "Help"
	listColumnSep  = " | "

	// ListHint closes every command listing.
	ListHint = "use help <command> for more information"
)

// FormatList renders the command listing: a header, a dash rule spanning
// both columns, one row per route in declaration order, a blank line and
// the hint. Widths count bytes.
func FormatList(t *Table) string {
	type row struct{ name, summary string }

	var rows []row
	if t != nil {
		for _, e := range t.entries {
			rows = append(rows, row{name: e.DisplayName(), summary: e.Spec.Summary()})
		}
	}

	nameWidth := len(listNameHeader)
	helpWidth := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, len(r.name))
		helpWidth = max(helpWidth, len(r.summary))
	}

	var b strings.Builder
	b.WriteString(padRight(listNameHeader, nameWidth) + listColumnSep + listHelpHeader + "\n")
	b.WriteString(strings.Repeat("-", nameWidth+len(listColumnSep)+helpWidth) + "\n")
	for _, r := range rows {
		b.WriteString(padRight(r.name, nameWidth) + listColumnSep + r.summary + "\n")
	}
	b.WriteString("\n")
	b.WriteString(ListHint + "\n")

	return b.String()
}

func padRight(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
