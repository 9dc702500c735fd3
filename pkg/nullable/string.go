package nullable

import (
	"bytes"
	"encoding/json"
	"strings"
)

// String in `nullable` package
// implements: json.Marshaler and json.Unmarshaler
// Accepts JSON strings, numbers and booleans so that form payloads typed
// loosely by the frontend (e.g. temperature sent as 37.5) still decode.
type String struct {
	String string
	Valid  bool
}

// NewString returns a valid String holding s.
func NewString(s string) String {
	return String{String: s, Valid: true}
}

func (n String) MarshalJSON() ([]byte, error) {
	if n.Valid {
		return json.Marshal(n.String)
	}
	return []byte("null"), nil
}

func (n *String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		n.Valid = false
		n.String = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		n.String = str
		n.Valid = true
		return nil
	}
	// numbers and booleans keep their literal JSON text
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.(type) {
	case float64, bool:
		n.String = string(data)
		n.Valid = true
		return nil
	}
	n.Valid = false
	n.String = ""
	return nil
}

// ForceValue returns the held string, or "" when absent.
func (n String) ForceValue() string {
	if !n.Valid {
		return ""
	}
	return n.String
}

// IsNil reports whether the value is absent or blank.
func (n String) IsNil() bool {
	return !n.Valid || strings.TrimSpace(n.String) == ""
}

// Or returns the trimmed value, or fallback when absent or blank.
func (n String) Or(fallback string) string {
	if n.IsNil() {
		return fallback
	}
	return strings.TrimSpace(n.String)
}
