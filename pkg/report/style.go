package report

// Edge is the state of one cell border.
type Edge int

const (
	// Present edges are drawn black.
	Present Edge = iota
	// Suppressed edges are drawn in the page color so adjoining cells fuse.
	Suppressed
)

// Border colors and weight written to the document.
const (
	TextColor       = "000000"
	PresentColor    = "000000"
	SuppressedColor = "FFFFFF"
	BorderStyle     = "single"
	BorderSize      = 4
)

// Color returns the hex color the edge is rendered with.
func (e Edge) Color() string {
	if e == Suppressed {
		return SuppressedColor
	}
	return PresentColor
}

// Borders holds the four edges of a cell.
type Borders struct {
	Top, Left, Bottom, Right Edge
}

// Styles assigns borders to every grid position of a Layout. All text is TextColor.
type Styles struct {
	Borders   [][]Borders
	TextColor string
}

// At returns the borders of grid position (r, c).
func (s Styles) At(r, c int) Borders {
	return s.Borders[r][c]
}

// ApplyStyle computes cell borders for a layout. Every edge starts present;
// the header row then loses its top, left and right edges, and the first
// data row loses its top edge.
func ApplyStyle(l Layout) Styles {
	s := Styles{
		Borders:   make([][]Borders, l.Rows),
		TextColor: TextColor,
	}

	for r := 0; r < l.Rows; r++ {
		s.Borders[r] = make([]Borders, l.Cols)
		for c := 0; c < l.Cols; c++ {
			b := Borders{}

			switch r {
			case HeaderRow:
				b.Top, b.Left, b.Right = Suppressed, Suppressed, Suppressed
			case FirstDataRow:
				b.Top = Suppressed
			}

			s.Borders[r][c] = b
		}
	}

	return s
}
