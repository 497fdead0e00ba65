package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	payload := `{
		"number": 12.5,
		"text": "30.75",
		"empty": "",
		"invalid": "abc",
		"nothing": null
	}`

	var decoded struct {
		Number  FlexFloat `json:"number"`
		Text    FlexFloat `json:"text"`
		Empty   FlexFloat `json:"empty"`
		Invalid FlexFloat `json:"invalid"`
		Nothing FlexFloat `json:"nothing"`
		Missing FlexFloat `json:"missing"`
	}

	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))

	assert.Equal(t, 12.5, decoded.Number.Float())
	assert.Equal(t, 30.75, decoded.Text.Float())

	// Valores ausentes ou inconvertíveis viram zero, nunca erro
	assert.Equal(t, 0.0, decoded.Empty.Float())
	assert.Equal(t, 0.0, decoded.Invalid.Float())
	assert.Equal(t, 0.0, decoded.Nothing.Float())
	assert.Equal(t, 0.0, decoded.Missing.Float())

	assert.Equal(t, 30, decoded.Text.Int())
}
