package docx

import "encoding/xml"

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Content []any
	SectPr  xmlSectPr `xml:"w:sectPr"`
}

type xmlSectPr struct {
	PgSz  xmlPgSz  `xml:"w:pgSz"`
	PgMar xmlPgMar `xml:"w:pgMar"`
}

type xmlPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xmlParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	Runs    []xmlRun `xml:"w:r"`
}

type xmlRun struct {
	RPr     *xmlRunPr `xml:"w:rPr,omitempty"`
	Content []any
}

type xmlRunPr struct {
	Bold  *xmlEmpty `xml:"w:b,omitempty"`
	Color *xmlVal   `xml:"w:color,omitempty"`
}

type xmlText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

type xmlTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type xmlBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

type xmlEmpty struct{}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlIntVal struct {
	Val int `xml:"w:val,attr"`
}

type xmlTable struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Pr      xmlTablePr `xml:"w:tblPr"`
	Grid    xmlGrid    `xml:"w:tblGrid"`
	Rows    []xmlRow   `xml:"w:tr"`
}

type xmlTablePr struct {
	Style  *xmlVal   `xml:"w:tblStyle,omitempty"`
	Width  xmlWidth  `xml:"w:tblW"`
	Layout xmlLayout `xml:"w:tblLayout"`
}

type xmlWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xmlLayout struct {
	Type string `xml:"w:type,attr"`
}

type xmlGrid struct {
	Cols []xmlGridCol `xml:"w:gridCol"`
}

type xmlGridCol struct {
	W int `xml:"w:w,attr"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"w:tc"`
}

type xmlCell struct {
	Pr         xmlCellPr      `xml:"w:tcPr"`
	Paragraphs []xmlParagraph `xml:"w:p"`
}

type xmlCellPr struct {
	Width    xmlWidth    `xml:"w:tcW"`
	GridSpan *xmlIntVal  `xml:"w:gridSpan,omitempty"`
	VMerge   *xmlVMerge  `xml:"w:vMerge,omitempty"`
	Borders  *xmlBorders `xml:"w:tcBorders,omitempty"`
}

type xmlVMerge struct {
	Val string `xml:"w:val,attr,omitempty"`
}

type xmlBorders struct {
	Top    xmlBorder `xml:"w:top"`
	Left   xmlBorder `xml:"w:left"`
	Bottom xmlBorder `xml:"w:bottom"`
	Right  xmlBorder `xml:"w:right"`
}

type xmlBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}
