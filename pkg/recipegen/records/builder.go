// Package records projects raw worksheet rows onto the fixed recipe schema.
package records

import (
	"strings"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/models"
)

// Builder turns rows into Records. The first row is the header row; every
// following row that is not blank becomes one Record with exactly Fields.
type Builder struct {
	fields  []string
	renames map[string]string
}

// NewBuilder returns a Builder emitting fields, in that order. renames maps a
// legacy header label to the field name it stands for.
func NewBuilder(fields []string, renames map[string]string) *Builder {
	b := &Builder{
		fields:  append([]string(nil), fields...),
		renames: make(map[string]string, len(renames)),
	}
	for from, to := range renames {
		b.renames[from] = to
	}
	return b
}

// NormalizeHeader returns the canonical field name for a header label.
// Labels without a rename are returned unchanged.
func (b *Builder) NormalizeHeader(name string) string {
	if to, ok := b.renames[name]; ok {
		return to
	}
	return name
}

// Headers trims and normalizes the header row.
func (b *Builder) Headers(row models.Row) []string {
	headers := make([]string, len(row))
	for i, cell := range row {
		headers[i] = b.NormalizeHeader(strings.TrimSpace(cell))
	}
	return headers
}

// Build converts rows into Records, preserving row order. Blank rows are
// skipped. Columns past the header row or under an empty header are
// ignored; when two columns share a header the right-most one wins.
func (b *Builder) Build(rows []models.Row) []models.Record {
	entries := []models.Record{}
	if len(rows) == 0 {
		return entries
	}

	headers := b.Headers(rows[0])
	for _, row := range rows[1:] {
		if row.IsBlank() {
			continue
		}
		data := make(map[string]string, len(row))
		for idx, cell := range row {
			if idx >= len(headers) || headers[idx] == "" {
				continue
			}
			data[headers[idx]] = strings.TrimSpace(cell)
		}
		entries = append(entries, models.NewRecord(b.fields, data))
	}
	return entries
}
