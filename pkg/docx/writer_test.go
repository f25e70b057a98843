package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPart(t *testing.T, pkg []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func assertWellFormed(t *testing.T, s string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(s))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}

func sampleDocument() *Document {
	black := Border{Style: "single", Size: 4, Color: "000000"}
	white := Border{Style: "single", Size: 4, Color: "FFFFFF"}

	doc := New()
	doc.AddTable(&Table{
		Style:   "TableGrid",
		Columns: EvenColumns(3),
		Rows: []Row{
			{Cells: []Cell{
				{GridSpan: 2, Borders: &Borders{Top: white, Left: white, Bottom: black, Right: white},
					Paragraph: Paragraph{Runs: []Run{{Text: "Course & Co <x>", Color: "000000"}}}},
				{Paragraph: Paragraph{Runs: []Run{{Text: "right"}}}},
			}},
			{Cells: []Cell{
				{VMerge: VMergeRestart, Paragraph: Paragraph{Runs: []Run{{Text: "Label", Bold: true}}}},
				{}, {},
			}},
			{Cells: []Cell{{VMerge: VMergeContinue}, {}, {}}},
		},
	})
	doc.AddParagraph(&Paragraph{})
	doc.AddParagraph(&Paragraph{Runs: []Run{{Text: "A", Bold: true}, {Text: "\t\t\t"}, {Text: "B", Bold: true}}})
	return doc
}

func TestWriteTo_PackageLayout(t *testing.T) {
	pkg, err := sampleDocument().Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	}, names)

	for _, name := range names {
		assertWellFormed(t, readPart(t, pkg, name))
	}
}

func TestWriteTo_TableMarkup(t *testing.T) {
	pkg, err := sampleDocument().Bytes()
	require.NoError(t, err)

	body := readPart(t, pkg, "word/document.xml")

	assert.True(t, strings.HasPrefix(body, xmlProlog))
	assert.Contains(t, body, `<w:document xmlns:w="`+nsW+`"`)
	assert.Contains(t, body, `<w:tblStyle w:val="TableGrid"></w:tblStyle>`)
	assert.Contains(t, body, `<w:tblLayout w:type="fixed"></w:tblLayout>`)
	assert.Equal(t, 3, strings.Count(body, `<w:gridCol w:w="2880"></w:gridCol>`))

	// merged header cell carries the width of both grid columns
	assert.Contains(t, body, `<w:tcW w:w="5760" w:type="dxa"></w:tcW><w:gridSpan w:val="2"></w:gridSpan>`)
	assert.Contains(t, body, `<w:vMerge w:val="restart"></w:vMerge>`)
	assert.Contains(t, body, `<w:vMerge></w:vMerge>`)

	assert.Contains(t, body, `<w:top w:val="single" w:sz="4" w:space="0" w:color="FFFFFF"></w:top>`+
		`<w:left w:val="single" w:sz="4" w:space="0" w:color="FFFFFF"></w:left>`+
		`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="000000"></w:bottom>`)

	assert.Contains(t, body, `<w:t>Course &amp; Co &lt;x&gt;</w:t>`)
	assert.Contains(t, body, `<w:rPr><w:b></w:b></w:rPr><w:t>Label</w:t>`)
	assert.Contains(t, body, `<w:rPr><w:color w:val="000000"></w:color></w:rPr>`)
}

func TestWriteTo_TabsAndSpaces(t *testing.T) {
	doc := New()
	doc.AddParagraph(&Paragraph{Runs: []Run{{Text: "\t\t\t"}, {Text: " padded "}, {Text: "a\nb"}}})

	pkg, err := doc.Bytes()
	require.NoError(t, err)
	body := readPart(t, pkg, "word/document.xml")

	assert.Contains(t, body, `<w:r><w:tab></w:tab><w:tab></w:tab><w:tab></w:tab></w:r>`)
	assert.Contains(t, body, `<w:t xml:space="preserve"> padded </w:t>`)
	assert.Contains(t, body, `<w:t>a</w:t><w:br></w:br><w:t>b</w:t>`)
}

func TestWriteTo_Deterministic(t *testing.T) {
	first, err := sampleDocument().Bytes()
	require.NoError(t, err)
	second, err := sampleDocument().Bytes()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteTo_EmptyDocument(t *testing.T) {
	pkg, err := New().Bytes()
	require.NoError(t, err)

	body := readPart(t, pkg, "word/document.xml")
	assert.Contains(t, body, `<w:body><w:sectPr>`)
	assert.NotContains(t, body, "<w:tbl>")
}

func TestWriteTo_RowOverflow(t *testing.T) {
	doc := New()
	doc.AddTable(&Table{Columns: EvenColumns(2), Rows: []Row{{Cells: []Cell{{GridSpan: 2}, {}}}}})

	_, err := doc.Bytes()
	assert.EqualError(t, err, "row 0 spans 3 columns, table has 2")
}

func TestEvenColumns(t *testing.T) {
	assert.Nil(t, EvenColumns(0))
	assert.Equal(t, []int{1234, 1234, 1234, 1234, 1234, 1234, 1234}, EvenColumns(7))
}
