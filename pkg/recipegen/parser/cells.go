package parser

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/models"
)

// Cell type attribute values with special handling.
const (
	CellTypeSharedString = "s"
	CellTypeInlineString = "inlineStr"
)

// ReadCellValue returns the text of a cell.
//
// Shared-string cells look up their <v> index in sharedStrings; an empty
// index reads as 0 and an index outside the table reads as "". Inline-string
// cells return their joined <is> text. Every other type returns the raw <v>
// text, so numbers, booleans and cached formula results come back verbatim.
func ReadCellValue(cell models.Cell, sharedStrings []string) (string, error) {
	switch cell.Type {
	case CellTypeSharedString:
		index := 0
		if raw := strings.TrimSpace(cell.Value); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return "", fmt.Errorf("%w: cell %s: shared string index %q", ErrInvalidFormat, cell.Ref, cell.Value)
			}
			index = n
		}
		if index < 0 || index >= len(sharedStrings) {
			return "", nil
		}
		return sharedStrings[index], nil
	case CellTypeInlineString:
		return cell.Inline, nil
	default:
		return cell.Value, nil
	}
}

// parseCell reads a <c> element whose start tag has just been consumed.
func parseCell(decoder *xml.Decoder, start xml.StartElement) (models.Cell, error) {
	cell := models.Cell{
		Ref:  attrValue(start, "r"),
		Type: attrValue(start, "t"),
	}

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return cell, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "v":
				text, err := readElementText(decoder)
				if err != nil {
					return cell, err
				}
				cell.Value = text
			case "is":
				text, err := readRunText(decoder)
				if err != nil {
					return cell, err
				}
				cell.Inline = text
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
	return cell, nil
}
