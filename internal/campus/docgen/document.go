package docgen

type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindBullet
	KindTable
)

// Block is one renderable unit of a report.
type Block struct {
	Kind  BlockKind
	Level int // heading level, or bullet depth starting at 0
	Text  string
	Table *Table
}

// Table is drawn manually in PDFs and as a native table in Word. Widths are
// in points and are scaled to the printable width when they do not fit.
type Table struct {
	Header []string
	Widths []float64
	Rows   [][]string
}

type Image struct {
	Name string
	Type string // "PNG" or "JPG"
	Data []byte
}

type Document struct {
	Title  string
	Blocks []Block

	// Images follow the body, one per PDF page.
	Images []Image
}

func Heading(level int, text string) Block { return Block{Kind: KindHeading, Level: level, Text: text} }
func Paragraph(text string) Block          { return Block{Kind: KindParagraph, Text: text} }
func Bullet(text string) Block             { return Block{Kind: KindBullet, Text: text} }
func TableBlock(t Table) Block             { return Block{Kind: KindTable, Table: &t} }

// ReplaceSection swaps the body of the first heading whose SectionKey is key
// for replacement. The section runs until the next heading of the same or a
// higher level. When no heading matches, replacement is inserted before the
// section named by before, or appended when that is missing too.
func ReplaceSection(blocks []Block, key, before string, replacement []Block) []Block {
	start := findSection(blocks, key)
	if start < 0 {
		at := findSection(blocks, before)
		if at < 0 {
			return append(blocks, replacement...)
		}
		out := make([]Block, 0, len(blocks)+len(replacement))
		out = append(out, blocks[:at]...)
		out = append(out, replacement...)
		return append(out, blocks[at:]...)
	}

	end := sectionEnd(blocks, start)
	out := make([]Block, 0, len(blocks)-(end-start)+len(replacement))
	out = append(out, blocks[:start]...)
	out = append(out, replacement...)
	return append(out, blocks[end:]...)
}

// Section returns the heading whose SectionKey is key and the blocks of its
// body.
func Section(blocks []Block, key string) (Block, []Block, bool) {
	start := findSection(blocks, key)
	if start < 0 {
		return Block{}, nil, false
	}
	end := sectionEnd(blocks, start)
	return blocks[start], append([]Block(nil), blocks[start+1:end]...), true
}

func sectionEnd(blocks []Block, start int) int {
	for i := start + 1; i < len(blocks); i++ {
		if blocks[i].Kind == KindHeading && blocks[i].Level <= blocks[start].Level {
			return i
		}
	}
	return len(blocks)
}

func findSection(blocks []Block, key string) int {
	if key == "" {
		return -1
	}
	for i, b := range blocks {
		if b.Kind == KindHeading && SectionKey(b.Text) == key {
			return i
		}
	}
	return -1
}
