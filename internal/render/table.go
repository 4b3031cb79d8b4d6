package render

import (
	"strconv"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/navtree/internal/replay"
)

const columnGap = "  "

// Table aligns rows under headers. Cells are measured in terminal columns
// so wide runes line up.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		var line strings.Builder
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				line.WriteString(columnGap)
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// Steps renders a replay report as a table, one row per step.
func Steps(report *replay.Report) string {
	rows := make([][]string, 0, len(report.Steps)+1)
	rows = append(rows, []string{"0", "", "initial", joinPath(report.Initial), ""})
	for _, s := range report.Steps {
		notes := make([]string, len(s.Notifications))
		for i, n := range s.Notifications {
			notes[i] = n.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			string(s.Event),
			s.Outcome,
			joinPath(s.Focused),
			strings.Join(notes, ", "),
		})
	}
	return Table([]string{"STEP", "EVENT", "OUTCOME", "FOCUSED", "NOTIFIED"}, rows)
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "-"
	}
	return strings.Join(path, "/")
}
