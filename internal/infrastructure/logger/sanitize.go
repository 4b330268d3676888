package logger

import (
	"fmt"
	"strings"
)

// maxLogValue caps user-supplied values so a pasted path or a classifier
// label cannot flood a log line.
const maxLogValue = 256

var escapes = map[rune]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// SanitizeForLog makes a user-supplied string safe to embed in a log line.
// Control characters are escaped so they cannot forge entries or drive
// the terminal; printable Unicode is kept as is.
func SanitizeForLog(s string) string {
	var b strings.Builder
	b.Grow(min(len(s), maxLogValue+8))

	n := 0
	for _, r := range s {
		if n == maxLogValue {
			b.WriteString("...")
			break
		}
		n++

		if esc, ok := escapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		if r < 0x20 || r == 0x7f {
			_, _ = fmt.Fprintf(&b, `\x%02x`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
