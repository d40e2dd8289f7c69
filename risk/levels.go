package risk

import (
	"slices"
	"strings"
	"unicode"

	"github.com/KanekiDevPro/Trade-Size-Calculator/numeral"
	"github.com/shopspring/decimal"
)

// ParseRiskLevels turns free text such as "0.25, 0.5 1،2" into a sorted,
// de-duplicated list of risk percentages. Localized digits and separators
// are accepted. Tokens are split on any run of commas, localized list
// separators or whitespace.
func ParseRiskLevels(text string) ([]decimal.Decimal, error) {
	if strings.TrimSpace(text) == "" {
		return nil, parseErr(CodeEmptyInput, "", "enter at least one risk level")
	}

	tokens := strings.FieldsFunc(numeral.Normalize(text), func(r rune) bool {
		return numeral.IsListSeparator(r) || unicode.IsSpace(r)
	})

	levels := make([]decimal.Decimal, 0, len(tokens))
	for _, tok := range tokens {
		v, ok := parseNumber(tok)
		if !ok {
			return nil, parseErr(CodeMalformedRiskLevel, tok, "malformed risk level %q", tok)
		}
		levels = append(levels, v)
	}

	levels = uniqueSorted(levels)
	if len(levels) == 0 {
		return nil, parseErr(CodeNoRiskLevels, "", "no valid risk levels")
	}
	return levels, nil
}

// FormatRiskLevels is the inverse of ParseRiskLevels for already
// canonical input: "1,2,2.5".
func FormatRiskLevels(levels []decimal.Decimal) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = l.String()
	}
	return strings.Join(parts, ",")
}

// ParseAmount parses a single localized number, e.g. "۱۰۰۰" or "1.5".
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(numeral.Normalize(text))
	if s == "" {
		return decimal.Zero, parseErr(CodeEmptyInput, "", "a number is required")
	}
	v, ok := parseNumber(s)
	if !ok {
		return decimal.Zero, parseErr(CodeMalformedNumber, s, "malformed number %q", s)
	}
	return v, nil
}

// maxNumberLen is the longest number token accepted.
const maxNumberLen = 64

// parseNumber accepts plain decimal notation only: an optional sign, digits
// and an optional fraction. Exponents are rejected.
func parseNumber(tok string) (decimal.Decimal, bool) {
	if len(tok) > maxNumberLen {
		return decimal.Zero, false
	}

	sign, s := "", tok
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	intPart, frac, hasDot := strings.Cut(s, ".")
	if intPart == "" && frac == "" {
		return decimal.Zero, false
	}
	if hasDot && frac == "" {
		return decimal.Zero, false
	}
	if !asciiDigits(intPart) || !asciiDigits(frac) {
		return decimal.Zero, false
	}
	if intPart == "" {
		intPart = "0"
	}
	tok = sign + intPart
	if hasDot {
		tok += "." + frac
	}

	v, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

func asciiDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// uniqueSorted returns a sorted copy of levels with numerically equal values
// collapsed, so "1" and "1.0" are one level.
func uniqueSorted(levels []decimal.Decimal) []decimal.Decimal {
	out := slices.Clone(levels)
	slices.SortFunc(out, func(a, b decimal.Decimal) int { return a.Cmp(b) })
	return slices.CompactFunc(out, func(a, b decimal.Decimal) bool { return a.Equal(b) })
}
