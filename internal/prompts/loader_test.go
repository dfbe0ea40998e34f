package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("narrative.json", "mini-report")
	require.NoError(t, err)
	assert.Contains(t, prompt, "mini_headline")
	assert.Contains(t, prompt, "{{.Scores}}")
}

func TestGet_MissingKey(t *testing.T) {
	ClearCache()

	_, err := Get("narrative.json", "does-not-exist")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_MissingFile(t *testing.T) {
	ClearCache()

	_, err := Get("nope.json", "mini-report")
	assert.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("narrative.json", "does-not-exist")
	})
}

func TestMustGet_FullReportSchemaFields(t *testing.T) {
	ClearCache()

	prompt := MustGet("narrative.json", "full-report")
	for _, field := range []string{
		"archetype", "signature_sentence", "if_then", "week_plan", "progress_tracker",
	} {
		assert.Contains(t, prompt, field)
	}
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := "Name: {{.FirstName}}, Scores: {{.Scores}}"
	result := Format(template, map[string]string{
		"FirstName": "Ada",
		"Scores":    `{"Giving Back": 7}`,
	})
	assert.Equal(t, `Name: Ada, Scores: {"Giving Back": 7}`, result)
	assert.False(t, strings.Contains(result, "{{."))
}

func TestFormat_UnknownPlaceholderLeftAlone(t *testing.T) {
	result := Format("{{.Unknown}}", map[string]string{"FirstName": "Ada"})
	assert.Equal(t, "{{.Unknown}}", result)
}
