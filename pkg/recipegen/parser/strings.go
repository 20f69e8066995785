package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

// ParseSharedStrings reads the shared-string table of the archive. A
// workbook without a shared-string part yields an empty table.
func ParseSharedStrings(r *zip.Reader) ([]string, error) {
	data, err := readZipFile(r, SharedStringsPart)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidFormat, SharedStringsPart, err)
	}
	if data == nil {
		return []string{}, nil
	}
	return parseSharedStringsXML(data)
}

// parseSharedStringsXML returns one entry per <si>, each the concatenation
// of its <t> fragments. Rich-text items split their text across runs.
func parseSharedStringsXML(data []byte) ([]string, error) {
	result := []string{}
	sawRoot := false

	decoder := newXMLDecoder(data)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidFormat, SharedStringsPart, err)
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if se.Name.Local != "si" {
			continue
		}
		text, err := readRunText(decoder)
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidFormat, SharedStringsPart, err)
		}
		result = append(result, text)
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: %s has no root element", ErrInvalidFormat, SharedStringsPart)
	}
	return result, nil
}
