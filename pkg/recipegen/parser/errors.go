package parser

import "errors"

// ErrFileNotFound indicates the workbook path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a zip archive or one of its
// XML parts cannot be parsed.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingWorksheet indicates the archive has no first worksheet part.
var ErrMissingWorksheet = errors.New("missing worksheet part")
