package render

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Wrap renders text as display lines no wider than maxWidth columns. The first line is
// prefixed with label and every later line with continuationPrefix.
//
// Lines break at the last whitespace that still fits; that whitespace is consumed. When a
// token does not fit and has no whitespace before the limit, the line runs on to the next
// whitespace instead of splitting the token, so such a line may exceed maxWidth.
// Only one whitespace rune is consumed per break, so a break inside a run of
// whitespace can leave a line that is empty or holds the rest of the run.
// Empty text yields the label alone.
func Wrap(label, continuationPrefix, text string, maxWidth int) []string {
	runes := []rune(text)
	prefix := label
	var lines []string

	pos := 0
	for {
		avail := maxWidth - runewidth.StringWidth(prefix)
		rest := runes[pos:]

		if runewidth.StringWidth(string(rest)) <= avail {
			lines = append(lines, prefix+string(rest))
			return lines
		}

		brk := breakPoint(rest, avail)
		lines = append(lines, prefix+string(rest[:brk]))
		pos += brk
		if pos >= len(runes) {
			return lines
		}

		// Consume the whitespace we broke on.
		pos++
		prefix = continuationPrefix
		if pos == len(runes) {
			// The text ended on the break whitespace: keep an empty line so the
			// consumed character is still accounted for.
			lines = append(lines, prefix)
			return lines
		}
	}
}

// breakPoint returns how many runes of s go on the current line. When the result is
// less than len(s), s[result] is the whitespace to consume.
func breakPoint(s []rune, avail int) int {
	limit := fitting(s, avail)

	for i := min(limit, len(s)-1); i >= 0; i-- {
		if unicode.IsSpace(s[i]) {
			return i
		}
	}

	for i := max(limit, 1); i < len(s); i++ {
		if unicode.IsSpace(s[i]) {
			return i
		}
	}
	return len(s)
}

// fitting returns the number of leading runes of s whose display width fits in avail.
func fitting(s []rune, avail int) int {
	width := 0
	for i, r := range s {
		width += runewidth.RuneWidth(r)
		if width > avail {
			return i
		}
	}
	return len(s)
}
