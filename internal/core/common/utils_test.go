package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject(t *testing.T) {
	cases := map[string]string{
		"bare":     `{"name": "Alice"}`,
		"fenced":   "```json\n{\"name\": \"Alice\"}\n```",
		"preamble": "Here you go: {\"name\": \"Alice\"} hope it helps",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseObject(in)
			require.NoError(t, err)
			assert.Equal(t, "Alice", got.Get("name").String())
		})
	}
}

func TestParseObjectKeepsScalarsReadable(t *testing.T) {
	obj, err := ParseObject(`sure: {"id": 1, "name": null, "ok": true}`)
	require.NoError(t, err)
	assert.Equal(t, "1", obj.Get("id").String())
	assert.Equal(t, "", obj.Get("name").String())
	assert.Equal(t, "true", obj.Get("ok").String())
}

func TestParseObjectErrors(t *testing.T) {
	_, err := ParseObject("no json here")
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = ParseObject("} backwards {")
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = ParseObject(`{"name": }`)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJSON)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
}
