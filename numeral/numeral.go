// Package numeral rewrites localized number text into plain ASCII so the
// rest of the calculator only ever parses 0-9, '.' and ','.
package numeral

import (
	"strings"
	"unicode"
)

// Localized separators that are mapped onto ASCII.
const (
	ArabicComma       = '،'
	ArabicSemicolon   = '؛'
	ArabicDecimalSep  = '٫'
	FullwidthComma    = '，'
	IdeographicComma  = '、'
	FullwidthFullStop = '．'
)

// Normalize maps every Unicode decimal digit to its ASCII equivalent, every
// localized list separator to ',' and localized decimal separators to '.'.
// All other runes pass through untouched.
func Normalize(s string) string {
	return strings.Map(mapRune, s)
}

// IsListSeparator reports whether r separates items in a list, either the
// ASCII comma or one of the localized forms Normalize folds into it.
func IsListSeparator(r rune) bool {
	switch r {
	case ',', ArabicComma, ArabicSemicolon, FullwidthComma, IdeographicComma:
		return true
	}
	return false
}

func mapRune(r rune) rune {
	if r <= unicode.MaxASCII {
		return r
	}
	switch r {
	case ArabicComma, ArabicSemicolon, FullwidthComma, IdeographicComma:
		return ','
	case ArabicDecimalSep, FullwidthFullStop:
		return '.'
	}
	if unicode.Is(unicode.Nd, r) {
		return '0' + digitValue(r)
	}
	return r
}

// digitValue relies on Nd code points being encoded in contiguous runs of
// ten that start at zero.
func digitValue(r rune) rune {
	zero := r
	for unicode.Is(unicode.Nd, zero-1) {
		zero--
	}
	return (r - zero) % 10
}
