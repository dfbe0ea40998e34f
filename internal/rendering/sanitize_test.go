package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_EmptyString(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitize_PlainASCIIUnchanged(t *testing.T) {
	text := "A calm snapshot of your readiness (0-10)."
	assert.Equal(t, text, Sanitize(text))
}

func TestSanitize_CommonPunctuation(t *testing.T) {
	input := "Life—Minus’Work • next"
	result := Sanitize(input)

	assert.Equal(t, "Life-Minus'Work - next", result)
}

func TestSanitize_SubstitutionTable(t *testing.T) {
	cases := map[string]string{
		"a—b":  "a-b",
		"a–b":  "a-b",
		"‘a’": "'a'",
		"“a”": `"a"`,
		"a…":   "a...",
		"• a":  "- a",
		"a b":  "a b",
		"a → b": "a -> b",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Sanitize(input), "input %q", input)
	}
}

func TestSanitize_DropsUnsupportedRunes(t *testing.T) {
	// Characters beyond Latin-1 with no substitution are dropped, not errors.
	assert.Equal(t, "score: ", Sanitize("score: 世界"))
	assert.Equal(t, "ab", Sanitize("a\U0001F600b"))
}

func TestSanitize_KeepsLatin1(t *testing.T) {
	text := "résumé © café"
	assert.Equal(t, text, Sanitize(text))
}
