package report

import "odgen/pkg/docx"

// Render converts sections into a document: per section the table, two
// blank paragraphs and the signature line.
func Render(sections []Section) *docx.Document {
	doc := docx.New()
	for _, s := range sections {
		doc.AddTable(renderTable(s.Layout, s.Styles))
		for i := 0; i < blankParagraphs; i++ {
			doc.AddParagraph(&docx.Paragraph{})
		}
		doc.AddParagraph(renderSignature(s.Signature))
	}
	return doc
}

func renderTable(l Layout, s Styles) *docx.Table {
	t := &docx.Table{
		Style:   "TableGrid",
		Columns: docx.EvenColumns(l.Cols),
		Rows:    make([]docx.Row, l.Rows),
	}

	for r := 0; r < l.Rows; r++ {
		var cells []docx.Cell
		for c := 0; c < l.Cols; {
			span, merged := l.MergeAt(r, c)
			if !merged {
				span = Span{Row: r, Col: c, Rows: 1, Cols: 1}
			}

			cell := docx.Cell{
				GridSpan: span.Cols,
				Borders:  spanBorders(s, r, span),
			}
			switch {
			case span.Rows > 1 && r == span.Row:
				cell.VMerge = docx.VMergeRestart
			case span.Rows > 1:
				cell.VMerge = docx.VMergeContinue
			}
			if r == span.Row {
				cell.Paragraph = renderText(l.Cells[r][span.Col], s.TextColor)
			}

			cells = append(cells, cell)
			c = span.Col + span.Cols
		}
		t.Rows[r] = docx.Row{Cells: cells}
	}

	return t
}

// spanBorders takes the outer edges of the span's slice of row r.
func spanBorders(s Styles, r int, span Span) *docx.Borders {
	first := s.At(r, span.Col)
	last := s.At(r, span.Col+span.Cols-1)
	return &docx.Borders{
		Top:    edge(first.Top),
		Left:   edge(first.Left),
		Bottom: edge(first.Bottom),
		Right:  edge(last.Right),
	}
}

func edge(e Edge) docx.Border {
	return docx.Border{Style: BorderStyle, Size: BorderSize, Color: e.Color()}
}

func renderText(c GridCell, color string) docx.Paragraph {
	if c.Text == "" {
		return docx.Paragraph{}
	}
	return docx.Paragraph{Runs: []docx.Run{{Text: c.Text, Bold: c.Bold, Color: color}}}
}

func renderSignature(sig Signature) *docx.Paragraph {
	p := &docx.Paragraph{}
	for i, role := range sig.Roles {
		if i > 0 {
			p.Runs = append(p.Runs, docx.Run{Text: sig.Gap})
		}
		p.Runs = append(p.Runs, docx.Run{Text: role, Bold: true})
	}
	return p
}
