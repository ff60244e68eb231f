package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdpdf/internal/render"
	"github.com/alnah/go-mdpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName names the per-user config directory.
const AppName = "go-mdpdf"

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxTitleLength       = 200  // PDF title
	MaxAuthorLength      = 100  // PDF author
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxBulletLength      = 8    // a few runes
)

// Numeric limits.
const (
	MinMargin   = 5.0  // mm
	MaxMargin   = 50.0 // mm
	MinFontSize = 4.0  // pt
	MaxFontSize = 72.0 // pt
	MaxWorkers  = 8
)

// Config holds all configuration for document generation.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Font       FontConfig       `yaml:"font"`
	Page       PageConfig       `yaml:"page"`
	Typography TypographyConfig `yaml:"typography"`
	Document   DocumentConfig   `yaml:"document"`
	Workers    int              `yaml:"workers"` // Batch parallelism (0 = auto)
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// FontConfig selects the document font.
type FontConfig struct {
	Source string `yaml:"source"` // Embedded font name or TrueType file path (empty = goregular)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // mm (default: 10)
}

// KindConfig overrides the typography of one element kind.
// Zero sizes and line heights keep the built-in value. Spacing is a pointer
// because zero is a legal override; nil keeps the built-in value.
type KindConfig struct {
	Size       float64  `yaml:"size"`       // pt
	Spacing    *float64 `yaml:"spacing"`    // mm before the element
	LineHeight float64  `yaml:"lineHeight"` // mm
}

// TypographyConfig overrides per-kind typography.
type TypographyConfig struct {
	H1        KindConfig `yaml:"h1"`
	H2        KindConfig `yaml:"h2"`
	H3        KindConfig `yaml:"h3"`
	Paragraph KindConfig `yaml:"paragraph"`
	ListItem  KindConfig `yaml:"listItem"`
	Code      KindConfig `yaml:"code"`
	Bullet    string     `yaml:"bullet"` // Empty = "•"
}

// DocumentConfig sets PDF metadata.
type DocumentConfig struct {
	Title  string `yaml:"title"`  // Empty = first H1
	Author string `yaml:"author"` // Optional
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("font.source", c.Font.Source, MaxPathLength); err != nil {
		return err
	}

	// Validate page fields
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if c.Page.Size != "" {
		switch strings.ToLower(c.Page.Size) {
		case "a4", "letter", "legal":
			// valid
		default:
			return fmt.Errorf("%w: page.size %q (must be a4, letter, or legal)", ErrInvalidValue, c.Page.Size)
		}
	}
	if c.Page.Orientation != "" {
		switch strings.ToLower(c.Page.Orientation) {
		case "portrait", "landscape":
			// valid
		default:
			return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, c.Page.Orientation)
		}
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin must be between %.0f and %.0f mm, got %.1f", ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}

	// Validate typography fields
	kinds := []struct {
		name string
		kc   KindConfig
	}{
		{"h1", c.Typography.H1},
		{"h2", c.Typography.H2},
		{"h3", c.Typography.H3},
		{"paragraph", c.Typography.Paragraph},
		{"listItem", c.Typography.ListItem},
		{"code", c.Typography.Code},
	}
	for _, k := range kinds {
		if err := k.kc.validate("typography." + k.name); err != nil {
			return err
		}
	}
	if err := c.Typography.validateHeadingOrder(); err != nil {
		return err
	}
	if err := validateFieldLength("typography.bullet", c.Typography.Bullet, MaxBulletLength); err != nil {
		return err
	}

	// Validate document fields
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	return nil
}

func (k KindConfig) validate(field string) error {
	if k.Size != 0 && (k.Size < MinFontSize || k.Size > MaxFontSize) {
		return fmt.Errorf("%w: %s.size must be between %.0f and %.0f, got %.1f", ErrInvalidValue, field, MinFontSize, MaxFontSize, k.Size)
	}
	if k.Spacing != nil && *k.Spacing < 0 {
		return fmt.Errorf("%w: %s.spacing cannot be negative, got %.1f", ErrInvalidValue, field, *k.Spacing)
	}
	if k.LineHeight < 0 {
		return fmt.Errorf("%w: %s.lineHeight cannot be negative, got %.1f", ErrInvalidValue, field, k.LineHeight)
	}
	return nil
}

// validateHeadingOrder checks h1 > h2 > h3 once overrides are applied
// to the built-in sizes.
func (t TypographyConfig) validateHeadingOrder() error {
	def := render.DefaultStyle()
	h1 := orDefault(t.H1.Size, def.H1.Size)
	h2 := orDefault(t.H2.Size, def.H2.Size)
	h3 := orDefault(t.H3.Size, def.H3.Size)
	if err := render.ValidateHeadingOrder(h1, h2, h3); err != nil {
		return fmt.Errorf("%w: typography: %v", ErrInvalidValue, err)
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v != 0 {
		return v
	}
	return def
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration where every field falls back to the
// built-in value.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Font:   FontConfig{Source: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var cfg Config
	if err := yamlutil.DecodeStrict(f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdpdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
