// Package docx writes WordprocessingML (.docx) packages containing
// paragraphs and bordered tables with merged cells.
package docx

// Block is a top-level body element: *Table or *Paragraph.
type Block interface {
	block()
}

// Document is an in-memory word-processing document.
type Document struct {
	Body []Block
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph to the body.
func (d *Document) AddParagraph(p *Paragraph) {
	d.Body = append(d.Body, p)
}

// AddTable appends a table to the body.
func (d *Document) AddTable(t *Table) {
	d.Body = append(d.Body, t)
}

// Paragraph is a sequence of runs. A nil or empty Runs renders a blank line.
type Paragraph struct {
	Runs []Run
}

func (*Paragraph) block() {}

// Run is text with uniform formatting. Tabs and newlines in Text are
// written as tab and break elements.
type Run struct {
	Text  string
	Bold  bool
	Color string // Hex RGB without '#', e.g. "000000"; empty inherits
}

// VMerge marks a cell's part in a vertical merge.
type VMerge int

const (
	VMergeNone     VMerge = iota
	VMergeRestart         // First cell of a vertical merge
	VMergeContinue        // Covered by the cell above
)

// Border is one edge of a cell.
type Border struct {
	Style string // "single"
	Size  int    // Eighths of a point
	Space int
	Color string
}

// Borders holds the four edges of a cell.
type Borders struct {
	Top    Border
	Left   Border
	Bottom Border
	Right  Border
}

// Cell is a table cell spanning GridSpan grid columns (0 or 1 means one).
type Cell struct {
	GridSpan  int
	VMerge    VMerge
	Borders   *Borders
	Paragraph Paragraph
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Table is a fixed-layout grid. Columns holds each grid column width in twips.
type Table struct {
	Style   string
	Columns []int
	Rows    []Row
}

func (*Table) block() {}

// Letter portrait page with Word's default margins, all in twips.
const (
	PageWidth    = 12240
	PageHeight   = 15840
	MarginTop    = 1440
	MarginBottom = 1440
	MarginLeft   = 1800
	MarginRight  = 1800

	// TextWidth is the usable width between the side margins.
	TextWidth = PageWidth - MarginLeft - MarginRight
)

// EvenColumns splits the text width into n equal grid columns.
func EvenColumns(n int) []int {
	if n <= 0 {
		return nil
	}
	cols := make([]int, n)
	for i := range cols {
		cols[i] = TextWidth / n
	}
	return cols
}
