// Package models defines the data structures passed between the reader,
// the record builder and the output writer.
package models

import "strings"

// Cell is a single <c> element of a worksheet, reduced to what the reader needs.
type Cell struct {
	// Ref is the cell reference (e.g. "C7"). Empty when the source omits the r attribute.
	Ref string
	// Type is the t attribute ("s", "inlineStr", "n", "b", "str", ...). Empty means numeric.
	Type string
	// Value is the text of the <v> child, empty when absent.
	Value string
	// Inline is the joined text of every <t> under the <is> child, empty when absent.
	Inline string
}

// Row is a dense, zero-based sequence of cell values. Columns with no cell
// in the source are empty strings.
type Row []string

// IsBlank reports whether every cell is empty after trimming whitespace.
func (r Row) IsBlank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
