package internal

import "sync"

// printable classifies byte values for sanitizing name and comment fields.
// It is built once on first use and read-only afterwards.
var (
	printableOnce sync.Once
	printable     [256]bool
)

func buildPrintable() {
	for c := '0'; c <= '9'; c++ {
		printable[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		printable[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		printable[c] = true
	}
	printable['.'] = true
	printable[','] = true
	printable[' '] = true
}

// Printable reports whether b is kept as-is when sanitizing metadata fields.
func Printable(b byte) bool {
	printableOnce.Do(buildPrintable)
	return printable[b]
}

// SanitizeField builds a display string from a fixed-width metadata field.
// Non-printable bytes are replaced with spaces; the field width is preserved.
func SanitizeField(field []byte) string {
	out := make([]byte, len(field))
	for i, b := range field {
		if Printable(b) {
			out[i] = b
		} else {
			out[i] = ' '
		}
	}
	return string(out)
}
