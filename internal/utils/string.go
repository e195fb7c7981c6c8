package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const byteOrderMark = '\uFEFF'

var numberPrinter = message.NewPrinter(language.English)

// TrimWord trims surrounding whitespace and byte order marks
func TrimWord(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == byteOrderMark
	})
}

// IsBlank reports whether s is empty after TrimWord
func IsBlank(s string) bool {
	return TrimWord(s) == ""
}

// FirstRunes returns the first n runes of s, or all of s if it is shorter.
// The second result is false when s holds fewer than n runes.
func FirstRunes(s string, n int) (string, bool) {
	if n <= 0 {
		return "", true
	}
	offset := 0
	for i := 0; i < n; i++ {
		if offset >= len(s) {
			return s, false
		}
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return s[:offset], true
}

// FormatWithCommas formats an integer with English digit grouping
func FormatWithCommas(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
