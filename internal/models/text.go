package models

import (
	"bytes"
	"encoding/json"
)

// Text is a string field that accepts any JSON value. Strings decode as-is,
// null, false and 0 decode to "", and anything else keeps its JSON text, so
// a request with a mistyped field is still validated field by field.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	raw := bytes.TrimSpace(data)
	switch string(raw) {
	case "null", "false":
		*t = ""
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil && n == 0 {
		*t = ""
		return nil
	}
	*t = Text(raw)
	return nil
}

func (t Text) String() string {
	return string(t)
}
