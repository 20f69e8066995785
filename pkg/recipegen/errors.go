package recipegen

import (
	"fmt"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/parser"
)

// ErrFileNotFound indicates the source workbook does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the source is not a readable xlsx archive.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrMissingWorksheet indicates the source has no first worksheet.
var ErrMissingWorksheet = parser.ErrMissingWorksheet

// Pipeline stages reported by GenerateError.
const (
	StageRead  = "read"
	StageWrite = "write"
)

// GenerateError represents a fatal error during a run.
type GenerateError struct {
	Stage string // "read" or "write"
	Path  string
	Err   error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

// NewGenerateError creates a new GenerateError.
func NewGenerateError(stage, path string, err error) *GenerateError {
	return &GenerateError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
