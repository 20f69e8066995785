// Package output serializes recipe records for the front-end bundle.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/models"
)

const indent = "  "

// ToJSON renders records as a JSON array. HTML characters and non-ASCII
// text are written literally. When pretty is set the array is indented
// with two spaces.
func ToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Module renders records as an ES module source file:
//
//	export const <name> = <JSON array>;
//
// followed by a single newline.
func Module(name string, records []models.Record) ([]byte, error) {
	payload, err := ToJSON(records, true)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(payload) + len(name) + 20)
	fmt.Fprintf(&buf, "export const %s = ", name)
	buf.Write(payload)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

// WriteModule writes the module for records to path, replacing any existing
// file. It returns the number of bytes written.
func WriteModule(path, name string, records []models.Record) (int, error) {
	data, err := Module(name, records)
	if err != nil {
		return 0, fmt.Errorf("render module: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, err
	}
	return len(data), nil
}
