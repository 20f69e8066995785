// Package main provides the CLI entry point for recipegen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beretta-wei/doraemon-recipe-tool/internal/logging"
	"github.com/beretta-wei/doraemon-recipe-tool/pkg/recipegen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recipegen",
		Short: "Generate the recipe data module from the recipe spreadsheet",
		Long: `recipegen reads the first worksheet of the recipe workbook and writes
its rows as an ES module exporting a JSON array of recipes.

Paths default to src/食譜清單.xlsx and src/data/recipes.js. They, the field
list and the header renames can be overridden in ./` + recipegen.DefaultConfigFile + `.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, _, err := recipegen.LoadConfig(recipegen.DefaultConfigFile)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	if _, err := recipegen.Generate(*cfg, logger); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}
