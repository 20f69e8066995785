package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newXMLDecoder returns a decoder over data with any UTF-8 BOM stripped and
// BOM-marked UTF-16 converted to UTF-8.
func newXMLDecoder(data []byte) *xml.Decoder {
	reader := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	decoder := xml.NewDecoder(reader)
	decoder.CharsetReader = charsetReader
	return decoder
}

// charsetReader is only consulted for non UTF-8 declarations. The bytes have
// already been normalised to UTF-8 by newXMLDecoder.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "utf-16", "utf-16le", "utf-16be", "unicode":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported XML encoding %q", label)
}

// readElementText consumes tokens up to the end of the current element and
// returns all character data inside it.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// readRunText consumes tokens up to the end of the current element and joins
// the text of every nested <t>, in document order, with no separator.
func readRunText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	inText := 0
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				inText++
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "t" && inText > 0 {
				inText--
			}
		case xml.CharData:
			if inText > 0 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}

func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
