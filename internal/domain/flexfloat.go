package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat é um número que aceita, no payload de origem, um número JSON,
// uma string numérica ou null. Qualquer valor que não possa ser convertido
// vira 0 — os feeds são coletados de fontes independentes e valores
// ausentes ou malformados não podem interromper a agregação.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}

		*f = FlexFloat(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		*f = 0
		return nil
	}

	*f = FlexFloat(value)
	return nil
}

func (f FlexFloat) Float() float64 {
	return float64(f)
}

func (f FlexFloat) Int() int {
	return int(f)
}
