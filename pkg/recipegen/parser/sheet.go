package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/models"
)

// ParseSheetRows parses worksheet XML into rows, in document order. Each row
// spans column 0 through the highest column present in it; missing columns
// are empty strings. Cells without a reference are dropped.
func ParseSheetRows(data []byte, sharedStrings []string) ([]models.Row, error) {
	rows := []models.Row{}
	sawRoot := false
	inSheetData := false

	decoder := newXMLDecoder(data)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidFormat, FirstWorksheetPart, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			sawRoot = true
			switch t.Name.Local {
			case "sheetData":
				inSheetData = true
			case "row":
				if !inSheetData {
					continue
				}
				row, err := parseRow(decoder, sharedStrings)
				if err != nil {
					if errors.Is(err, ErrInvalidFormat) {
						return nil, fmt.Errorf("parse %s row %d: %w", FirstWorksheetPart, len(rows)+1, err)
					}
					return nil, fmt.Errorf("%w: parse %s row %d: %w", ErrInvalidFormat, FirstWorksheetPart, len(rows)+1, err)
				}
				rows = append(rows, row)
			}
		case xml.EndElement:
			if t.Name.Local == "sheetData" {
				inSheetData = false
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: %s has no root element", ErrInvalidFormat, FirstWorksheetPart)
	}
	return rows, nil
}

// parseRow reads a <row> element whose start tag has just been consumed.
func parseRow(decoder *xml.Decoder, sharedStrings []string) (models.Row, error) {
	cells := make(map[int]string)

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "c" {
				depth++
				continue
			}
			cell, err := parseCell(decoder, t)
			if err != nil {
				return nil, err
			}
			if cell.Ref == "" {
				continue
			}
			value, err := ReadCellValue(cell, sharedStrings)
			if err != nil {
				return nil, err
			}
			cells[ColumnIndex(cell.Ref)] = value
		case xml.EndElement:
			depth--
		}
	}

	return densify(cells), nil
}

// densify expands a sparse column->value map into a row from column 0 to the
// highest index present. An empty map gives an empty row.
func densify(cells map[int]string) models.Row {
	maxIndex := -1
	for idx := range cells {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	row := make(models.Row, maxIndex+1)
	for idx, value := range cells {
		if idx >= 0 {
			row[idx] = value
		}
	}
	return row
}
