package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid geometry shared by every section table.
const (
	Columns         = 7
	HeaderRow       = 0
	ColumnHeaderRow = 1
	SubHeaderRow    = 2
	FirstDataRow    = 3
)

var (
	columnLabels    = [5]string{"S.No", "Name", "Registration No.", "Section", "Date"}
	hoursLabel      = "Hours"
	subHeaderLabels = [2]string{"From", "To"}
)

// Span is a rectangular merge range anchored at (Row, Col).
type Span struct {
	Row, Col   int
	Rows, Cols int
}

// Contains reports whether grid position (r, c) lies inside the span.
func (s Span) Contains(r, c int) bool {
	return r >= s.Row && r < s.Row+s.Rows && c >= s.Col && c < s.Col+s.Cols
}

// GridCell is the content of one grid position. Positions covered by a
// merge, other than its anchor, stay empty.
type GridCell struct {
	Text string
	Bold bool
}

// Layout describes a section table: its size, cell text and merge ranges.
type Layout struct {
	Rows   int
	Cols   int
	Cells  [][]GridCell
	Merges []Span
}

// MergeAt returns the merge range covering (r, c), if any.
func (l Layout) MergeAt(r, c int) (Span, bool) {
	for _, m := range l.Merges {
		if m.Contains(r, c) {
			return m, true
		}
	}
	return Span{}, false
}

// Row is one rendered participant line: its 1-based number and the
// Name, Registration No., Section, Date, From and To values.
type Row struct {
	Number int
	Values [6]string
}

// Cells returns the seven cell texts of the row.
func (r Row) Cells() [Columns]string {
	return [Columns]string{strconv.Itoa(r.Number), r.Values[0], r.Values[1], r.Values[2], r.Values[3], r.Values[4], r.Values[5]}
}

// DataRows numbers the group's records from 1 in their group order.
func DataRows(g Group) []Row {
	rows := make([]Row, len(g.Records))
	for i, rec := range g.Records {
		rows[i] = Row{
			Number: i + 1,
			Values: [6]string{rec.Name, rec.RegistrationNumber, rec.Section, rec.Date, rec.From, rec.To},
		}
	}
	return rows
}

// CourseLabel renders the left header cell, e.g. "Course: B.Tech CSE".
func CourseLabel(degree, branch string) string {
	parts := []string{"Course:"}
	for _, p := range []string{degree, branch} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// TermLabel renders the right header cell, e.g. "Year/Semester: 2/3".
func TermLabel(year Year, semester int) string {
	return fmt.Sprintf("Year/Semester: %s/%d", year.Label(), semester)
}

// LayoutGroup builds the grid for one group: a header row, a two-row column
// header block and one row per record.
func LayoutGroup(g Group, labels Labels) Layout {
	rows := DataRows(g)

	l := Layout{
		Rows:  FirstDataRow + len(rows),
		Cols:  Columns,
		Cells: make([][]GridCell, FirstDataRow+len(rows)),
	}
	for i := range l.Cells {
		l.Cells[i] = make([]GridCell, Columns)
	}

	l.Cells[HeaderRow][0] = GridCell{Text: CourseLabel(labels.DegreePrefix, g.Key.Branch)}
	l.Cells[HeaderRow][5] = GridCell{Text: TermLabel(YearFor(g.Key.Semester), g.Key.Semester)}
	l.Merges = append(l.Merges,
		Span{Row: HeaderRow, Col: 0, Rows: 1, Cols: 5},
		Span{Row: HeaderRow, Col: 5, Rows: 1, Cols: 2},
	)

	for c, label := range columnLabels {
		l.Cells[ColumnHeaderRow][c] = GridCell{Text: label, Bold: true}
		l.Merges = append(l.Merges, Span{Row: ColumnHeaderRow, Col: c, Rows: 2, Cols: 1})
	}
	l.Cells[ColumnHeaderRow][5] = GridCell{Text: hoursLabel, Bold: true}
	l.Merges = append(l.Merges, Span{Row: ColumnHeaderRow, Col: 5, Rows: 1, Cols: 2})

	for i, label := range subHeaderLabels {
		l.Cells[SubHeaderRow][5+i] = GridCell{Text: label, Bold: true}
	}

	for i, row := range rows {
		for c, text := range row.Cells() {
			l.Cells[FirstDataRow+i][c] = GridCell{Text: text}
		}
	}

	return l
}
