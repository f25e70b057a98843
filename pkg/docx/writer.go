package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// zipEpoch is stamped on every package entry so identical documents
// serialize to identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Bytes serializes the document into a .docx package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the .docx package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	body, err := d.marshalBody()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", body},
		{"word/styles.xml", []byte(stylesXML)},
	}

	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return cw.n, fmt.Errorf("failed to create %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return cw.n, fmt.Errorf("failed to write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to finalize docx package: %w", err)
	}
	return cw.n, nil
}

func (d *Document) marshalBody() ([]byte, error) {
	doc := xmlDocument{
		W: nsW,
		R: nsR,
		Body: xmlBody{
			SectPr: xmlSectPr{
				PgSz:  xmlPgSz{W: PageWidth, H: PageHeight},
				PgMar: xmlPgMar{Top: MarginTop, Right: MarginRight, Bottom: MarginBottom, Left: MarginLeft, Header: 720, Footer: 720},
			},
		},
	}

	for _, b := range d.Body {
		switch v := b.(type) {
		case *Paragraph:
			doc.Body.Content = append(doc.Body.Content, toXMLParagraph(*v))
		case *Table:
			t, err := toXMLTable(v)
			if err != nil {
				return nil, err
			}
			doc.Body.Content = append(doc.Body.Content, t)
		default:
			return nil, fmt.Errorf("unsupported block type %T", b)
		}
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document.xml: %w", err)
	}
	return append([]byte(xmlProlog), out...), nil
}

func toXMLParagraph(p Paragraph) xmlParagraph {
	xp := xmlParagraph{}
	for _, r := range p.Runs {
		xp.Runs = append(xp.Runs, toXMLRun(r))
	}
	return xp
}

func toXMLRun(r Run) xmlRun {
	xr := xmlRun{}
	if r.Bold || r.Color != "" {
		xr.RPr = &xmlRunPr{}
		if r.Bold {
			xr.RPr.Bold = &xmlEmpty{}
		}
		if r.Color != "" {
			xr.RPr.Color = &xmlVal{Val: r.Color}
		}
	}

	var text strings.Builder
	flush := func() {
		if text.Len() == 0 {
			return
		}
		s := text.String()
		t := xmlText{Text: s}
		if strings.TrimSpace(s) != s {
			t.Space = "preserve"
		}
		xr.Content = append(xr.Content, t)
		text.Reset()
	}

	for _, ch := range r.Text {
		switch ch {
		case '\t':
			flush()
			xr.Content = append(xr.Content, xmlTab{})
		case '\n':
			flush()
			xr.Content = append(xr.Content, xmlBreak{})
		case '\r':
		default:
			text.WriteRune(ch)
		}
	}
	flush()

	return xr
}

func toXMLTable(t *Table) (xmlTable, error) {
	xt := xmlTable{
		Pr: xmlTablePr{
			Width:  xmlWidth{W: 0, Type: "auto"},
			Layout: xmlLayout{Type: "fixed"},
		},
	}
	if t.Style != "" {
		xt.Pr.Style = &xmlVal{Val: t.Style}
	}
	for _, w := range t.Columns {
		xt.Grid.Cols = append(xt.Grid.Cols, xmlGridCol{W: w})
	}

	for ri, row := range t.Rows {
		xr := xmlRow{}
		col := 0
		for _, c := range row.Cells {
			span := c.GridSpan
			if span < 1 {
				span = 1
			}
			if col+span > len(t.Columns) {
				return xmlTable{}, fmt.Errorf("row %d spans %d columns, table has %d", ri, col+span, len(t.Columns))
			}

			width := 0
			for _, w := range t.Columns[col : col+span] {
				width += w
			}
			col += span

			xc := xmlCell{
				Pr:         xmlCellPr{Width: xmlWidth{W: width, Type: "dxa"}},
				Paragraphs: []xmlParagraph{toXMLParagraph(c.Paragraph)},
			}
			if span > 1 {
				xc.Pr.GridSpan = &xmlIntVal{Val: span}
			}
			switch c.VMerge {
			case VMergeRestart:
				xc.Pr.VMerge = &xmlVMerge{Val: "restart"}
			case VMergeContinue:
				xc.Pr.VMerge = &xmlVMerge{}
			}
			if c.Borders != nil {
				xc.Pr.Borders = &xmlBorders{
					Top:    toXMLBorder(c.Borders.Top),
					Left:   toXMLBorder(c.Borders.Left),
					Bottom: toXMLBorder(c.Borders.Bottom),
					Right:  toXMLBorder(c.Borders.Right),
				}
			}
			xr.Cells = append(xr.Cells, xc)
		}
		xt.Rows = append(xt.Rows, xr)
	}

	return xt, nil
}

func toXMLBorder(b Border) xmlBorder {
	style := b.Style
	if style == "" {
		style = "single"
	}
	return xmlBorder{Val: style, Size: b.Size, Space: b.Space, Color: b.Color}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
