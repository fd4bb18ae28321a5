package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponseStripsFences(t *testing.T) {
	cases := map[string]string{
		"plain object":      `{"a":1}`,
		"json fence":        "```json\n{\"a\":1}\n```",
		"bare fence":        "```\n{\"a\":1}\n```",
		"leading prose":     "Here is the result:\n{\"a\":1}",
		"surrounding space": "  \n{\"a\":1}\n  ",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			cleaned := CleanJSONResponse(input)
			assert.Equal(t, `{"a":1}`, cleaned)
			assert.True(t, json.Valid([]byte(cleaned)))
		})
	}
}

func TestCleanJSONResponseLeavesNonJSONAlone(t *testing.T) {
	out := CleanJSONResponse("the model refused to answer")
	assert.Equal(t, "the model refused to answer", out)
}

func TestExtractText(t *testing.T) {
	body := []byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`)
	text, err := extractText(body)
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractTextNoCandidates(t *testing.T) {
	_, err := extractText([]byte(`{"candidates":[]}`))
	assert.Error(t, err)
}
