// Package docgen turns drafted report text into PDF and Word documents.
package docgen

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	boldRe        = regexp.MustCompile(`\*\*[ \t]*([^*\n]*?)[ \t]*\*\*`)
	bulletRe      = regexp.MustCompile(`(?m)^[ \t]*[-•][ \t]+`)
	blankRunRe    = regexp.MustCompile(`\n[ \t]*(\n[ \t]*)+`)
	keycapRe      = regexp.MustCompile(`([0-9])\x{FE0F}?\x{20E3}`)
	sectionNumRe  = regexp.MustCompile(`(?i)^(\d+[.):]?|[ivxlc]+[.):])\s+`)
	trailingPunct = ":.-"
)

// CleanDraft normalizes model output before segmentation. Bold markers lose
// their inner padding, bullets are pulled to the margin and runs of blank
// lines shrink to one.
func CleanDraft(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = boldRe.ReplaceAllString(text, "**$1**")
	text = bulletRe.ReplaceAllString(text, "- ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// CleanHeading strips markdown markers and emoji from a heading. Keycap
// digits such as 2️⃣ become "2.".
func CleanHeading(s string) string {
	s = keycapRe.ReplaceAllString(s, "$1.")
	s = strings.Map(func(r rune) rune {
		if r == '#' || r == '*' || isEmoji(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// SectionKey reduces a heading to a lower-case key without numbering, so
// "### 2️⃣ **Events**" and "2. Events:" both give "events".
func SectionKey(heading string) string {
	s := CleanHeading(heading)
	s = sectionNumRe.ReplaceAllString(s, "")
	s = strings.TrimRight(s, trailingPunct+" ")
	return strings.ToLower(s)
}

func isEmoji(r rune) bool {
	switch {
	case r == 0xFE0F, r == 0x20E3, r == 0x200D:
		return true
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	}
	return unicode.Is(unicode.So, r) && r > 0x2000
}
