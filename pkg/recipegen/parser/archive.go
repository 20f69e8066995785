// Package parser reads the minimal subset of an Office Open XML workbook
// needed to recover the first worksheet as rows of strings.
package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/models"
)

// Part names inside the workbook archive.
const (
	SharedStringsPart  = "xl/sharedStrings.xml"
	FirstWorksheetPart = "xl/worksheets/sheet1.xml"
)

// Workbook holds the parts of an archive the reader needs. The archive
// itself is closed by the time a Workbook is returned.
type Workbook struct {
	// Path is the archive the parts were read from.
	Path string
	// SharedStrings is the shared-string table, empty when the part is absent.
	SharedStrings []string
	// Worksheet is the raw XML of the first worksheet.
	Worksheet []byte
}

// ReadWorkbook opens the archive at path, extracts the shared strings and
// the first worksheet, and closes the archive on every return path.
func ReadWorkbook(path string) (*Workbook, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	defer r.Close()

	wb, err := readParts(&r.Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	wb.Path = path
	return wb, nil
}

func readParts(r *zip.Reader) (*Workbook, error) {
	sharedStrings, err := ParseSharedStrings(r)
	if err != nil {
		return nil, err
	}

	sheet, err := readZipFile(r, FirstWorksheetPart)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidFormat, FirstWorksheetPart, err)
	}
	if sheet == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingWorksheet, FirstWorksheetPart)
	}

	return &Workbook{SharedStrings: sharedStrings, Worksheet: sheet}, nil
}

// Rows parses the worksheet into dense rows.
func (wb *Workbook) Rows() ([]models.Row, error) {
	return ParseSheetRows(wb.Worksheet, wb.SharedStrings)
}

// LoadSheetRows reads the first worksheet of the workbook at path as rows.
func LoadSheetRows(path string) ([]models.Row, error) {
	wb, err := ReadWorkbook(path)
	if err != nil {
		return nil, err
	}
	rows, err := wb.Rows()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// readZipFile returns the content of the named entry, or nil when the
// archive has no such entry.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
