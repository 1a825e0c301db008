package docgen

import (
	"strings"

	"gitlab.com/golang-commonmark/markdown"
)

var md = markdown.New(
	markdown.HTML(false),
	markdown.Tables(true),
	markdown.Linkify(false),
	markdown.Typographer(false),
)

// boldHeadingLevel is given to paragraphs that are nothing but bold text.
const boldHeadingLevel = 4

// Segment parses cleaned markdown into blocks. Headings keep their level and
// are stripped of emoji and markers. A bold-only line becomes a level 4
// heading; list items become bullets; GFM tables become tables.
func Segment(text string) []Block {
	tokens := md.Parse([]byte(text))

	var (
		out       []Block
		listDepth int
		inItem    bool
		table     *Table
		row       []string
		inHead    bool
	)

	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i].(type) {
		case *markdown.HeadingOpen:
			if inline, ok := next[*markdown.Inline](tokens, i); ok {
				if h := CleanHeading(inlineText(inline.Children)); h != "" {
					out = append(out, Heading(tok.HLevel, h))
				}
			}
		case *markdown.BulletListOpen, *markdown.OrderedListOpen:
			listDepth++
		case *markdown.BulletListClose, *markdown.OrderedListClose:
			listDepth--
		case *markdown.ListItemOpen:
			inItem = true
		case *markdown.ListItemClose:
			inItem = false
		case *markdown.ParagraphOpen:
			inline, ok := next[*markdown.Inline](tokens, i)
			if !ok {
				continue
			}
			if inItem && listDepth > 0 {
				if t := strings.TrimSpace(inlineText(inline.Children)); t != "" {
					out = append(out, Block{Kind: KindBullet, Level: listDepth - 1, Text: t})
				}
				// Only the first paragraph of an item is the bullet.
				inItem = false
				continue
			}
			out = append(out, paragraphBlocks(inline.Children)...)
		case *markdown.Fence:
			if t := strings.TrimSpace(tok.Content); t != "" {
				out = append(out, Paragraph(t))
			}
		case *markdown.CodeBlock:
			if t := strings.TrimSpace(tok.Content); t != "" {
				out = append(out, Paragraph(t))
			}
		case *markdown.TableOpen:
			table = &Table{}
		case *markdown.TheadOpen:
			inHead = true
		case *markdown.TheadClose:
			inHead = false
		case *markdown.TrOpen:
			row = nil
		case *markdown.Inline:
			if table != nil {
				row = append(row, strings.TrimSpace(inlineText(tok.Children)))
			}
		case *markdown.TrClose:
			if table == nil {
				continue
			}
			if inHead {
				table.Header = row
			} else {
				table.Rows = append(table.Rows, row)
			}
		case *markdown.TableClose:
			if table != nil {
				out = append(out, TableBlock(*table))
			}
			table = nil
		}
	}
	return out
}

// paragraphBlocks splits a paragraph at line breaks so a bold line followed
// by body text yields a heading and a paragraph.
func paragraphBlocks(children []markdown.Token) []Block {
	var (
		out  []Block
		line []markdown.Token
		body []string
	)
	flushBody := func() {
		if len(body) > 0 {
			out = append(out, Paragraph(strings.Join(body, " ")))
			body = nil
		}
	}
	flushLine := func() {
		if len(line) == 0 {
			return
		}
		text := strings.TrimSpace(inlineText(line))
		switch {
		case text == "":
		case boldOnly(line):
			flushBody()
			out = append(out, Heading(boldHeadingLevel, CleanHeading(text)))
		default:
			body = append(body, text)
		}
		line = nil
	}

	for _, c := range children {
		switch c.(type) {
		case *markdown.Softbreak, *markdown.Hardbreak:
			flushLine()
		default:
			line = append(line, c)
		}
	}
	flushLine()
	flushBody()
	return out
}

// boldOnly reports whether every text of the line sits inside one strong span.
func boldOnly(line []markdown.Token) bool {
	if len(line) < 3 {
		return false
	}
	if _, ok := line[0].(*markdown.StrongOpen); !ok {
		return false
	}
	last := len(line) - 1
	// Trailing punctuation such as a colon after the bold run is allowed.
	if t, ok := line[last].(*markdown.Text); ok && strings.Trim(t.Content, " :") == "" {
		last--
	}
	if _, ok := line[last].(*markdown.StrongClose); !ok {
		return false
	}
	for _, c := range line[1:last] {
		if _, ok := c.(*markdown.StrongClose); ok {
			return false
		}
	}
	return true
}

func inlineText(children []markdown.Token) string {
	var b strings.Builder
	for _, c := range children {
		switch t := c.(type) {
		case *markdown.Text:
			b.WriteString(t.Content)
		case *markdown.CodeInline:
			b.WriteString(t.Content)
		case *markdown.Softbreak, *markdown.Hardbreak:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func next[T markdown.Token](tokens []markdown.Token, i int) (T, bool) {
	var zero T
	if i+1 >= len(tokens) {
		return zero, false
	}
	t, ok := tokens[i+1].(T)
	return t, ok
}
