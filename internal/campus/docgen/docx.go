package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Half-points and twips as used by WordprocessingML.
const (
	docxTitleSize    = 36
	docxHeadingSize  = 28
	docxSubHeadSize  = 24
	docxSpacingAfter = 100
	docxBulletIndent = 360
	docxPrintable    = 9360 // twips between 1" margins on A4/Letter
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// RenderDOCX writes doc as a Word document. Images are left out.
func RenderDOCX(w io.Writer, doc Document) error {
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	if doc.Title != "" {
		writeRunParagraph(&body, doc.Title, `<w:jc w:val="center"/><w:spacing w:after="240"/>`,
			fmt.Sprintf(`<w:b/><w:u w:val="single"/><w:sz w:val="%d"/>`, docxTitleSize))
	}
	for _, b := range doc.Blocks {
		switch b.Kind {
		case KindHeading:
			size := docxHeadingSize
			if b.Level >= boldHeadingLevel {
				size = docxSubHeadSize
			}
			writeRunParagraph(&body, b.Text, `<w:spacing w:before="200" w:after="100"/>`,
				fmt.Sprintf(`<w:b/><w:sz w:val="%d"/>`, size))
		case KindBullet:
			writeRunParagraph(&body, "• "+b.Text,
				fmt.Sprintf(`<w:ind w:left="%d" w:hanging="180"/><w:spacing w:after="%d"/>`,
					docxBulletIndent*(b.Level+1), docxSpacingAfter), "")
		case KindTable:
			writeTable(&body, *b.Table)
		default:
			writeRunParagraph(&body, b.Text, fmt.Sprintf(`<w:spacing w:after="%d"/>`, docxSpacingAfter), "")
		}
	}

	body.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	body.WriteString(`</w:body></w:document>`)

	zw := zip.NewWriter(w)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(docxContentTypes)},
		{"_rels/.rels", []byte(docxRels)},
		{"word/document.xml", body.Bytes()},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("docx %s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return fmt.Errorf("docx %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func writeRunParagraph(b *bytes.Buffer, text, pPr, rPr string) {
	b.WriteString("<w:p>")
	if pPr != "" {
		b.WriteString("<w:pPr>" + pPr + "</w:pPr>")
	}
	writeRuns(b, text, rPr)
	b.WriteString("</w:p>")
}

// writeRuns emits one run per line so embedded newlines become breaks.
func writeRuns(b *bytes.Buffer, text, rPr string) {
	for i, line := range strings.Split(text, "\n") {
		b.WriteString("<w:r>")
		if rPr != "" {
			b.WriteString("<w:rPr>" + rPr + "</w:rPr>")
		}
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		_ = xml.EscapeText(b, []byte(line))
		b.WriteString("</w:t></w:r>")
	}
}

func writeTable(b *bytes.Buffer, t Table) {
	widths := fitWidths(t, docxPrintable/20)
	if len(widths) == 0 {
		return
	}

	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(b, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="000000"/>`, side)
	}
	b.WriteString(`</w:tblBorders></w:tblPr><w:tblGrid>`)
	for _, w := range widths {
		fmt.Fprintf(b, `<w:gridCol w:w="%d"/>`, int(w*20))
	}
	b.WriteString(`</w:tblGrid>`)

	row := func(cells []string, bold bool) {
		b.WriteString("<w:tr>")
		for i, w := range widths {
			fmt.Fprintf(b, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr><w:p>`, int(w*20))
			rPr := ""
			if bold {
				rPr = "<w:b/>"
			}
			writeRuns(b, cellAt(cells, i), rPr)
			b.WriteString("</w:p></w:tc>")
		}
		b.WriteString("</w:tr>")
	}
	if len(t.Header) > 0 {
		row(t.Header, true)
	}
	for _, r := range t.Rows {
		row(r, false)
	}
	b.WriteString("</w:tbl>")
	// Word requires a paragraph between a table and what follows.
	b.WriteString(`<w:p><w:pPr><w:spacing w:after="120"/></w:pPr></w:p>`)
}
