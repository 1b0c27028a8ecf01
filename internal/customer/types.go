package customer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Summary is the lightweight list-row representation of a customer.
type Summary struct {
	ID    string `json:"ID"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// UnmarshalJSON accepts numeric or string IDs; the backend emits integers.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    json.RawMessage `json:"ID"`
		Name  string          `json:"name"`
		Color string          `json:"color"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := scalarString(raw.ID)
	if err != nil {
		return fmt.Errorf("customer ID: %w", err)
	}
	s.ID = id
	s.Name = raw.Name
	s.Color = ParseColor(raw.Color)
	return nil
}

// Field is one key/value line of a customer detail record.
type Field struct {
	Key   string
	Value string
}

// Detail is a full per-customer record. Its shape is defined by the server,
// so it is kept as the ordered list of fields the server sent.
type Detail struct {
	Fields []Field
}

// Get returns the value stored under key.
func (d Detail) Get(key string) (string, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields.
func (d Detail) Len() int { return len(d.Fields) }

// MarshalJSON writes the fields back as a JSON object in their original order.
func (d Detail) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ErrNotObject is returned when a detail payload is not a JSON object.
var ErrNotObject = errors.New("customer detail is not a JSON object")

// UnmarshalJSON decodes an arbitrary JSON object preserving key order.
// Non-string values are kept as compact JSON text.
func (d *Detail) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	d.Fields = d.Fields[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		d.Fields = append(d.Fields, Field{Key: key, Value: displayValue(raw)})
	}
	_, err = dec.Token()
	return err
}

func displayValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed)
	}
	return compact.String()
}

func scalarString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", errors.New("missing")
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("unsupported identifier %s", strings.TrimSpace(string(trimmed)))
}
