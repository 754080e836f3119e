package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, ParseJSON(`{"name":"test"}`, &v))
	assert.Equal(t, "test", v.Name)
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	err := ParseJSON(`{"a":1} {"b":2}`, &v)
	assert.ErrorContains(t, err, "unexpected extra JSON data")
}

func TestParseJSONInvalid(t *testing.T) {
	var v map[string]interface{}
	assert.Error(t, ParseJSON(`not json`, &v))
	assert.Error(t, ParseJSON(``, &v))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, ExtractJSONObject("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(`Sure! Here it is: {"a":1} Enjoy.`))
	assert.Equal(t, `{"outer":{"inner":2}}`, ExtractJSONObject(`x {"outer":{"inner":2}} y`))

	// Without braces the content passes through untouched.
	assert.Equal(t, "no json here", ExtractJSONObject("  no json here  "))
}

func TestToJSON(t *testing.T) {
	s, err := ToJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, s)
}
