package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxFilenameLength = 255

// Characters that break Content-Disposition quoting, inject headers or
// act as path separators.
var dangerousChars = map[rune]bool{
	'"':  true,
	'\\': true,
	'/':  true,
	':':  true,
	'\n': true,
	'\r': true,
}

// SanitizeFilename makes a client-supplied name safe for display, logs and
// headers. Dangerous and control characters become underscores, Unicode is
// kept, and names over 255 bytes are cut while keeping the extension.
// An empty result becomes "file".
func SanitizeFilename(name string) string {
	result := strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 32 || r == 127 || dangerousChars[r] {
			return '_'
		}
		return r
	}, name))

	if strings.Trim(result, "_") == "" {
		return "file"
	}

	if len(result) > maxFilenameLength {
		ext := filepath.Ext(result)
		if ext == "" || len(ext) >= maxFilenameLength {
			return truncateToBytes(result, maxFilenameLength)
		}
		return truncateToBytes(strings.TrimSuffix(result, ext), maxFilenameLength-len(ext)) + ext
	}

	return result
}

// truncateToBytes cuts s to at most maxBytes without splitting a rune.
func truncateToBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}

// ContentDisposition builds an inline or attachment header value for name.
func ContentDisposition(name string, inline bool) string {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	return fmt.Sprintf("%s; filename=%q", disposition, SanitizeFilename(name))
}
