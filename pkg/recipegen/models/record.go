package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a recipe entry: a fixed, ordered set of field names mapped to
// string values. Get never fails; a field the source did not provide reads
// as the empty string. JSON encoding preserves field order.
type Record struct {
	fields []string
	values map[string]string
}

// NewRecord projects data onto fields. Keys in data that are not in fields
// are dropped; fields missing from data default to "".
func NewRecord(fields []string, data map[string]string) Record {
	r := Record{
		fields: append([]string(nil), fields...),
		values: make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		r.values[f] = data[f]
	}
	return r
}

// Fields returns the record's field names in output order.
func (r Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Get returns the value of field, or "" when the record has no such field.
func (r Record) Get(field string) string {
	return r.values[field]
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// MarshalJSON encodes the record as a JSON object in field order.
// HTML characters and non-ASCII text are left unescaped.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, f); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, r.values[f]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of string values, keeping the
// order in which keys first appear.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: expected object, got %v", tok)
	}

	fields := []string{}
	values := make(map[string]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record: field %q: %w", key, err)
		}
		if _, seen := values[key]; !seen {
			fields = append(fields, key)
		}
		values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	r.fields = fields
	r.values = values
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
