package recipegen

import (
	"log/slog"

	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/models"
	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/output"
	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/parser"
	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen/records"
)

// Result summarizes a completed run.
type Result struct {
	OutputPath string
	// Rows is the number of worksheet rows, header included.
	Rows int
	// Records is the number of records written.
	Records int
	// Bytes is the size of the written module.
	Bytes int
}

// Build reads the source workbook and returns its records without writing
// anything.
func Build(cfg Config, logger *slog.Logger) ([]models.Record, int, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	wb, err := parser.ReadWorkbook(cfg.SourcePath)
	if err != nil {
		return nil, 0, NewGenerateError(StageRead, cfg.SourcePath, err)
	}
	logger.Debug("workbook read",
		"path", cfg.SourcePath,
		"shared_strings", len(wb.SharedStrings),
		"worksheet_bytes", len(wb.Worksheet),
	)

	rows, err := wb.Rows()
	if err != nil {
		return nil, 0, NewGenerateError(StageRead, cfg.SourcePath, err)
	}

	builder := records.NewBuilder(cfg.Fields, cfg.HeaderRenames)
	entries := builder.Build(rows)

	skipped := 0
	if len(rows) > 1 {
		skipped = len(rows) - 1 - len(entries)
	}
	logger.Debug("records built",
		"rows", len(rows),
		"records", len(entries),
		"blank_rows", skipped,
	)
	return entries, len(rows), nil
}

// Generate runs the full pipeline: read the workbook, build records and
// write the module, replacing any existing output file.
func Generate(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entries, rowCount, err := Build(cfg, logger)
	if err != nil {
		return nil, err
	}

	n, err := output.WriteModule(cfg.OutputPath, cfg.ExportName, entries)
	if err != nil {
		return nil, NewGenerateError(StageWrite, cfg.OutputPath, err)
	}
	logger.Info("recipes written",
		"path", cfg.OutputPath,
		"records", len(entries),
		"bytes", n,
	)

	return &Result{
		OutputPath: cfg.OutputPath,
		Rows:       rowCount,
		Records:    len(entries),
		Bytes:      n,
	}, nil
}
