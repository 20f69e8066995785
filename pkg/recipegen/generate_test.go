package recipegen

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/models"
)

// writeWorkbook saves rows to Sheet1 of a new workbook and returns its path.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "食譜清單.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testConfig(t *testing.T, source string) Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.SourcePath = source
	cfg.OutputPath = filepath.Join(t.TempDir(), "recipes.js")
	return cfg
}

func readModule(t *testing.T, path string) []models.Record {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	require.True(t, strings.HasPrefix(text, "export const recipes = "), text)
	require.True(t, strings.HasSuffix(text, ";\n"), text)

	var records []models.Record
	payload := strings.TrimSuffix(strings.TrimPrefix(text, "export const recipes = "), ";\n")
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	return records
}

func TestGenerateEndToEnd(t *testing.T) {
	source := writeWorkbook(t, [][]any{
		{"編號", "料理食譜"},
		{"001", "蛋炒飯"},
	})
	cfg := testConfig(t, source)

	result, err := Generate(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 1, result.Records)
	assert.Equal(t, cfg.OutputPath, result.OutputPath)

	var sb strings.Builder
	sb.WriteString("export const recipes = [\n  {\n")
	for i, f := range DefaultFields {
		value := ""
		switch f {
		case "編號":
			value = "001"
		case "料理食譜":
			value = "蛋炒飯"
		}
		sep := ","
		if i == len(DefaultFields)-1 {
			sep = ""
		}
		fmt.Fprintf(&sb, "    \"%s\": \"%s\"%s\n", f, value, sep)
	}
	sb.WriteString("  }\n];\n")

	content, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, sb.String(), string(content))
	assert.Equal(t, len(content), result.Bytes)
}

func TestGenerateSchemaAndRename(t *testing.T) {
	source := writeWorkbook(t, [][]any{
		{"編號", "料理食譜", "廚具", "備註", "價格", nil, "⭐️5.0"},
		{"001", "蛋炒飯", "平底鍋", "extra", 120, nil, 900},
		{nil, nil, nil},
		{"002", "  番茄炒蛋  ", nil, nil, nil, "orphan"},
	})
	cfg := testConfig(t, source)

	_, err := Generate(cfg, nil)
	require.NoError(t, err)

	records := readModule(t, cfg.OutputPath)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, DefaultFields, r.Fields())
	}

	assert.Equal(t, "平底鍋", records[0].Get("使用器具"))
	assert.Equal(t, "120", records[0].Get("價格"))
	assert.Equal(t, "900", records[0].Get("⭐️5.0"))
	assert.Equal(t, "番茄炒蛋", records[1].Get("料理食譜"))
	assert.Equal(t, "", records[1].Get("使用器具"))
}

func TestGenerateRoundTrip(t *testing.T) {
	source := writeWorkbook(t, [][]any{
		{"編號", "圖片", "料理食譜", "材料 1", "食譜+"},
		{"001", "img/001.png", "蛋炒飯", "蛋", "<b>&</b>"},
		{"002", nil, "炒麵", "麵"},
	})
	cfg := testConfig(t, source)

	built, rows, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	_, err = Generate(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, built, readModule(t, cfg.OutputPath))
}

func TestGenerateIdempotent(t *testing.T) {
	source := writeWorkbook(t, [][]any{
		{"編號", "料理食譜", "價格"},
		{"001", "蛋炒飯", 120},
		{"002", "炒麵", 80.5},
	})
	cfg := testConfig(t, source)

	_, err := Generate(cfg, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	_, err = Generate(cfg, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateHeaderOnly(t *testing.T) {
	cfg := testConfig(t, writeWorkbook(t, [][]any{{"編號", "料理食譜"}}))
	cfg.ExportName = "recipeList"

	result, err := Generate(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Records)

	content, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "export const recipeList = [];\n", string(content))
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()

	notZip := filepath.Join(dir, "plain.xlsx")
	require.NoError(t, os.WriteFile(notZip, []byte("plain text"), 0644))

	noSheet := filepath.Join(dir, "nosheet.xlsx")
	f, err := os.Create(noSheet)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("xl/workbook.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	tests := []struct {
		name   string
		source string
		err    error
	}{
		{"missing source", filepath.Join(dir, "missing.xlsx"), ErrFileNotFound},
		{"not an archive", notZip, ErrInvalidFormat},
		{"no worksheet", noSheet, ErrMissingWorksheet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.source)

			_, err := Generate(cfg, nil)
			require.ErrorIs(t, err, tt.err)

			var genErr *GenerateError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, StageRead, genErr.Stage)
			assert.Equal(t, tt.source, genErr.Path)

			_, statErr := os.Stat(cfg.OutputPath)
			assert.True(t, os.IsNotExist(statErr), "output must not be written")
		})
	}
}

func TestGenerateWriteError(t *testing.T) {
	cfg := testConfig(t, writeWorkbook(t, [][]any{{"編號"}, {"001"}}))
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "recipes.js")

	_, err := Generate(cfg, nil)
	var genErr *GenerateError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, StageWrite, genErr.Stage)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t, "unused.xlsx")
	cfg.Fields = nil

	_, err := Generate(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fields")
}
