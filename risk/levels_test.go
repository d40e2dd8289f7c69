package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"comma list", "0.25, 0.5, 1, 2", []string{"0.25", "0.5", "1", "2"}},
		{"duplicates", "1,2,2,1", []string{"1", "2"}},
		{"numeric duplicates", "1, 1.0, 1.00", []string{"1"}},
		{"unsorted", "3 1 2", []string{"1", "2", "3"}},
		{"mixed delimiters", "1,, 2\t3\n4", []string{"1", "2", "3", "4"}},
		{"persian digits and comma", "۰٫۲۵، ۰٫۵، ۱", []string{"0.25", "0.5", "1"}},
		{"arabic comma no spaces", "1،2،3", []string{"1", "2", "3"}},
		{"leading and trailing delimiters", " ,1,2, ", []string{"1", "2"}},
		{"out of range still parses", "150, -1", []string{"-1", "150"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRiskLevels(tt.in)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assertDec(t, w, got[i])
			}
		})
	}
}

func TestParseRiskLevels_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		code  string
		token string
	}{
		{"empty", "", CodeEmptyInput, ""},
		{"whitespace", "  \t ", CodeEmptyInput, ""},
		{"only delimiters", ",,،,", CodeNoRiskLevels, ""},
		{"malformed token", "1, abc, 2", CodeMalformedRiskLevel, "abc"},
		{"percent sign", "1%", CodeMalformedRiskLevel, "1%"},
		{"not a number", "nan", CodeMalformedRiskLevel, "nan"},
		{"huge negative exponent", "1e-50000000", CodeMalformedRiskLevel, "1e-50000000"},
		{"exponent", "1, 2E1", CodeMalformedRiskLevel, "2E1"},
		{"bare dot", "1, .", CodeMalformedRiskLevel, "."},
		{"double sign", "--1", CodeMalformedRiskLevel, "--1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRiskLevels(tt.in)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrParse)
			assert.Equal(t, tt.code, CodeOf(err))

			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.token, pe.Token)
			if tt.token != "" {
				assert.Contains(t, pe.Error(), tt.token)
			}
		})
	}
}

func TestParseRiskLevels_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := ParseRiskLevels("1,2,2,1")
	require.NoError(t, err)

	text := FormatRiskLevels(first)
	assert.Equal(t, "1,2", text)

	second, err := ParseRiskLevels(text)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	v, err := ParseAmount(" ۱۰۰۰ ")
	require.NoError(t, err)
	assertDec(t, "1000", v)

	v, err = ParseAmount("۱٫۵")
	require.NoError(t, err)
	assertDec(t, "1.5", v)

	_, err = ParseAmount("")
	assert.Equal(t, CodeEmptyInput, CodeOf(err))

	_, err = ParseAmount("12abc")
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, CodeMalformedNumber, CodeOf(err))
}

func TestParseAmountPlainNotation(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		".5":   "0.5",
		"-.25": "-0.25",
		"+3":   "3",
		"007":  "7",
	} {
		v, err := ParseAmount(in)
		require.NoError(t, err, in)
		assertDec(t, want, v)
	}

	for _, in := range []string{"1e3", "1e-50000000", "5.", "1.2.3", "0x10", strings.Repeat("1", 65)} {
		_, err := ParseAmount(in)
		assert.Equal(t, CodeMalformedNumber, CodeOf(err), in)
	}
}
