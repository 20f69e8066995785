package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const nsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

func worksheetXML(rows ...string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<worksheet xmlns="` + nsMain + `"><dimension ref="A1"/><sheetData>` +
		strings.Join(rows, "") +
		`</sheetData></worksheet>`
}

func sharedStringsXML(items ...string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<sst xmlns="` + nsMain + `">`)
	for _, item := range items {
		sb.WriteString("<si>" + item + "</si>")
	}
	sb.WriteString("</sst>")
	return sb.String()
}

// writeArchive writes parts into a zip file under t.TempDir and returns its path.
func writeArchive(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func openArchive(t *testing.T, path string) *zip.Reader {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return &r.Reader
}
