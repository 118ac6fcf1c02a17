package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_CodeFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"bare fence", "```\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"language fence", "```javascript\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"plain json", `{"key": "value"}`, `{"key": "value"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanJSONBlock(tc.input))
		})
	}
}

func TestCleanJSONBlock_Preamble(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"preamble before object",
			"Here is the JSON:\n{\"school\": \"Rice University\"}",
			`{"school": "Rice University"}`,
		},
		{
			"trailing chatter",
			"{\"key\": \"value\"}\n\nLet me know if you need anything else!",
			`{"key": "value"}`,
		},
		{
			"preamble before array",
			"Suggestions:\n[\"What's your GPA?\", \"Which state?\"]",
			`["What's your GPA?", "Which state?"]`,
		},
		{
			"nested objects",
			"Output:\n{\"outer\": {\"inner\": \"value\"}}",
			`{"outer": {"inner": "value"}}`,
		},
		{
			"escaped quotes",
			"Result: {\"message\": \"He said \\\"hello\\\"\"}",
			`{"message": "He said \"hello\""}`,
		},
		{
			"braces inside strings",
			`{"template": "Hello {name}!"}`,
			`{"template": "Hello {name}!"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanJSONBlock(tc.input))
		})
	}
}

func TestExtractBalanced(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractBalanced(`{"a": 1} extra`, '{', '}'))
	assert.Equal(t, `[1, [2, 3]]`, extractBalanced(`[1, [2, 3]] tail`, '[', ']'))
	assert.Empty(t, extractBalanced("not json", '{', '}'))
	assert.Empty(t, extractBalanced(`{"never closed`, '{', '}'))
}
