package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDraft = "## 📌 Event Report\r\n\n\n" +
	"### 1️⃣ Introduction\n" +
	"The **  Tech Fest ** brought students together.\n\n\n\n" +
	"**Key Highlights**\n" +
	"    - Workshops on Go\n" +
	"  - Hackathon & prizes\n\n" +
	"### 5️⃣ **Conclusion**\n" +
	"A success.\n"

func TestCleanDraft(t *testing.T) {
	got := CleanDraft(sampleDraft)
	require.NotContains(t, got, "\r")
	require.NotContains(t, got, "\n\n\n")
	require.Contains(t, got, "The **Tech Fest** brought")
	require.Contains(t, got, "\n- Workshops on Go\n- Hackathon & prizes")
	require.False(t, strings.HasSuffix(got, "\n"))
}

func TestCleanHeadingAndSectionKey(t *testing.T) {
	require.Equal(t, "2. Events", CleanHeading("### 2️⃣ **Events**"))
	require.Equal(t, "Event Report", CleanHeading("📌 Event Report"))

	require.Equal(t, "events", SectionKey("2️⃣ Events"))
	require.Equal(t, "events", SectionKey("2. Events:"))
	require.Equal(t, "placements", SectionKey("IV) Placements"))
	require.Equal(t, "key highlights", SectionKey("**Key Highlights**"))
	require.Equal(t, "civil engineering", SectionKey("Civil Engineering"))
}

func TestSegment(t *testing.T) {
	blocks := Segment(CleanDraft(sampleDraft))

	want := []Block{
		{Kind: KindHeading, Level: 2, Text: "Event Report"},
		{Kind: KindHeading, Level: 3, Text: "1. Introduction"},
		{Kind: KindParagraph, Text: "The Tech Fest brought students together."},
		{Kind: KindHeading, Level: 4, Text: "Key Highlights"},
		{Kind: KindBullet, Text: "Workshops on Go"},
		{Kind: KindBullet, Text: "Hackathon & prizes"},
		{Kind: KindHeading, Level: 3, Text: "5. Conclusion"},
		{Kind: KindParagraph, Text: "A success."},
	}
	require.Equal(t, want, blocks)
}

func TestSegmentNestedListsAndTables(t *testing.T) {
	text := "- outer\n  - inner\n\n| Metric | Count |\n|---|---|\n| Placed | 40 |\n"
	blocks := Segment(text)

	require.Len(t, blocks, 3)
	require.Equal(t, Block{Kind: KindBullet, Level: 0, Text: "outer"}, blocks[0])
	require.Equal(t, Block{Kind: KindBullet, Level: 1, Text: "inner"}, blocks[1])
	require.Equal(t, KindTable, blocks[2].Kind)
	require.Equal(t, []string{"Metric", "Count"}, blocks[2].Table.Header)
	require.Equal(t, [][]string{{"Placed", "40"}}, blocks[2].Table.Rows)
}

func TestReplaceSection(t *testing.T) {
	blocks := []Block{
		Heading(3, "1. Introduction"),
		Paragraph("intro"),
		Heading(3, "2️⃣ Events"),
		Bullet("e1"),
		Heading(4, "Sub"),
		Paragraph("still events"),
		Heading(3, "5. Conclusion"),
		Paragraph("bye"),
	}

	table := TableBlock(Table{Header: []string{"A"}, Rows: [][]string{{"x"}}})
	got := ReplaceSection(blocks, "events", "conclusion", []Block{Heading(3, "2. Events"), table})
	require.Equal(t, []Block{
		Heading(3, "1. Introduction"),
		Paragraph("intro"),
		Heading(3, "2. Events"),
		table,
		Heading(3, "5. Conclusion"),
		Paragraph("bye"),
	}, got)

	// Missing sections go before the conclusion.
	got = ReplaceSection(got, "placements", "conclusion", []Block{Heading(3, "4. Placements")})
	require.Equal(t, "4. Placements", got[4].Text)
	require.Equal(t, "5. Conclusion", got[5].Text)

	// And at the end when there is no conclusion either.
	got = ReplaceSection([]Block{Paragraph("x")}, "events", "conclusion", []Block{Heading(3, "Events")})
	require.Len(t, got, 2)
}

func TestSection(t *testing.T) {
	blocks := []Block{
		Heading(3, "4. Placements"),
		Paragraph("Most students were placed."),
		Heading(4, "Highlights"),
		Bullet("top offer"),
		Heading(3, "5. Conclusion"),
	}

	h, body, ok := Section(blocks, "placements")
	require.True(t, ok)
	require.Equal(t, "4. Placements", h.Text)
	require.Equal(t, blocks[1:4], body)

	_, _, ok = Section(blocks, "events")
	require.False(t, ok)
}

func testDocument(t *testing.T) Document {
	rows := make([][]string, 60)
	for i := range rows {
		rows[i] = []string{"Workshop <Go> & friends", "Technical", strings.Repeat("long description ", 12), "2024-03-10"}
	}
	return Document{
		Title: "Annual Report",
		Blocks: []Block{
			Heading(3, "1. Introduction"),
			Paragraph("Café society, “quotes” ™"),
			Bullet("first"),
			{Kind: KindBullet, Level: 1, Text: "nested"},
			TableBlock(Table{
				Header: []string{"Event Name", "Type", "Description", "Date"},
				Widths: []float64{120, 80, 180, 80},
				Rows:   rows,
			}),
			Heading(4, "Closing"),
		},
		Images: []Image{{Name: "a.png", Type: "PNG", Data: pngBytes(t)}},
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, testDocument(t)))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	require.Greater(t, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")), 2)
}

func TestRenderPDFRejectsBrokenImage(t *testing.T) {
	doc := Document{Title: "x", Images: []Image{{Name: "bad.png", Type: "PNG", Data: []byte("nope")}}}
	require.Error(t, RenderPDF(io.Discard, doc))
}

func TestRenderDOCX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDOCX(&buf, testDocument(t)))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := map[string]*zip.File{}
	for _, f := range zr.File {
		names[f.Name] = f
	}
	require.Contains(t, names, "[Content_Types].xml")
	require.Contains(t, names, "_rels/.rels")
	require.Contains(t, names, "word/document.xml")

	rc, err := names["word/document.xml"].Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)

	require.Contains(t, string(data), "Workshop &lt;Go&gt; &amp; friends")
	require.Contains(t, string(data), `<w:sz w:val="28"/>`)
	require.Contains(t, string(data), "<w:tbl>")

	// Well-formed XML.
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}

func TestWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	pdfName, docxName, err := WriteReport(dir, "evt1", Document{Title: "Event Report", Blocks: []Block{Paragraph("hi")}})
	require.NoError(t, err)
	require.Equal(t, "evt1.pdf", pdfName)
	require.Equal(t, "evt1.docx", docxName)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
