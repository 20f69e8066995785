// Package recipegen converts the recipe spreadsheet into an ES module that
// the front-end bundles as static data.
package recipegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is the file the CLI reads overrides from, relative to
// the working directory.
const DefaultConfigFile = "recipegen.toml"

const (
	defaultSourcePath = "src/食譜清單.xlsx"
	defaultOutputPath = "src/data/recipes.js"
	defaultExportName = "recipes"
	defaultLogLevel   = "info"
	defaultLogFormat  = "auto"
)

// DefaultFields is the recipe schema, in output order.
var DefaultFields = []string{
	"編號",
	"圖片",
	"料理食譜",
	"材料 1",
	"材料 2",
	"材料 3",
	"材料 4",
	"材料 5",
	"食譜+",
	"使用器具",
	"價格",
	"⭐️0.5",
	"⭐️1.0",
	"⭐️1.5",
	"⭐️2.0",
	"⭐️2.5",
	"⭐️3.0",
	"⭐️3.5",
	"⭐️4.0",
	"⭐️4.5",
	"⭐️5.0",
}

// DefaultHeaderRenames maps the legacy equipment header to its field name.
var DefaultHeaderRenames = map[string]string{
	"廚具": "使用器具",
}

var exportNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Logging configures log output.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Format is console, json, or auto (console on a terminal, json otherwise).
	Format string `toml:"format"`
}

// Config describes one conversion run.
type Config struct {
	// SourcePath is the .xlsx workbook to read.
	SourcePath string `toml:"source_path"`
	// OutputPath is the module file to write. Its directory must exist.
	OutputPath string `toml:"output_path"`
	// ExportName is the name of the exported constant.
	ExportName string `toml:"export_name"`
	// Fields is the record schema, in output order.
	Fields []string `toml:"fields"`
	// HeaderRenames maps legacy header labels to field names.
	HeaderRenames map[string]string `toml:"header_renames"`
	Logging       Logging           `toml:"logging"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	renames := make(map[string]string, len(DefaultHeaderRenames))
	for from, to := range DefaultHeaderRenames {
		renames[from] = to
	}
	return Config{
		SourcePath:    defaultSourcePath,
		OutputPath:    defaultOutputPath,
		ExportName:    defaultExportName,
		Fields:        append([]string(nil), DefaultFields...),
		HeaderRenames: renames,
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// LoadConfig decodes the TOML file at path over the defaults. A missing file
// is not an error; the defaults are returned and exists is false. Entries in
// header_renames are added to the default renames; fields replaces the
// default schema.
func LoadConfig(path string) (cfg *Config, exists bool, err error) {
	c := DefaultConfig()

	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, false, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		exists = true

		defaultFields, defaultRenames := c.Fields, c.HeaderRenames
		c.Fields, c.HeaderRenames = nil, nil

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&c); err != nil {
			return nil, false, fmt.Errorf("parse config %s: %w", path, err)
		}

		if c.Fields == nil {
			c.Fields = defaultFields
		}
		for from, to := range c.HeaderRenames {
			defaultRenames[from] = to
		}
		c.HeaderRenames = defaultRenames
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, false, err
	}
	return &c, exists, nil
}

func (c *Config) normalize() {
	c.SourcePath = strings.TrimSpace(c.SourcePath)
	c.OutputPath = strings.TrimSpace(c.OutputPath)
	c.ExportName = strings.TrimSpace(c.ExportName)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return errors.New("source_path must be set")
	}
	if c.OutputPath == "" {
		return errors.New("output_path must be set")
	}
	if !exportNamePattern.MatchString(c.ExportName) {
		return fmt.Errorf("export_name %q is not a valid identifier", c.ExportName)
	}
	if err := c.validateFields(); err != nil {
		return err
	}
	for from, to := range c.HeaderRenames {
		if from == "" || to == "" {
			return fmt.Errorf("header_renames: empty label in %q -> %q", from, to)
		}
	}
	return c.validateLogging()
}

func (c *Config) validateFields() error {
	if len(c.Fields) == 0 {
		return errors.New("fields must not be empty")
	}
	seen := make(map[string]struct{}, len(c.Fields))
	for _, f := range c.Fields {
		if f == "" {
			return errors.New("fields must not contain an empty name")
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("fields: duplicate name %q", f)
		}
		seen[f] = struct{}{}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
