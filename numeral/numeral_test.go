package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii untouched", "0.25, 0.5, 1, 2", "0.25, 0.5, 1, 2"},
		{"persian digits", "۰۱۲۳۴۵۶۷۸۹", "0123456789"},
		{"arabic-indic digits", "٠١٢٣٤٥٦٧٨٩", "0123456789"},
		{"fullwidth digits", "１２３", "123"},
		{"devanagari digits", "४२", "42"},
		{"arabic comma", "۱،۲", "1,2"},
		{"arabic decimal separator", "۱٫۵", "1.5"},
		{"fullwidth comma", "1，2", "1,2"},
		{"ideographic comma", "1、2", "1,2"},
		{"mixed", "0.25، ۰٫۵ ,1", "0.25, 0.5 ,1"},
		{"letters pass through", "abc ریسک", "abc ریسک"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeMathematicalDigits(t *testing.T) {
	t.Parallel()

	// U+1D7CE..U+1D7FF holds five back-to-back digit sets.
	assert.Equal(t, "09", Normalize("\U0001D7CE\U0001D7D7"))
	assert.Equal(t, "07", Normalize("\U0001D7F6\U0001D7FD"))
}

func TestIsListSeparator(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{',', '،', '؛', '，', '、'} {
		assert.True(t, IsListSeparator(r), "rune %q", r)
	}
	for _, r := range []rune{'.', '٫', ' ', 'a'} {
		assert.False(t, IsListSeparator(r), "rune %q", r)
	}
}
