package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-mdpdf/internal/config"
)

// envPrefix marks the environment variables read by mdpdf.
const envPrefix = "MDPDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MDPDF_CONFIG: config file name or path
	Font       string        // MDPDF_FONT: embedded font name or TrueType path
	Timeout    time.Duration // MDPDF_TIMEOUT: overall timeout
	InputDir   string        // MDPDF_INPUT_DIR: default input directory
	OutputDir  string        // MDPDF_OUTPUT_DIR: default output directory
	PageSize   string        // MDPDF_PAGE_SIZE: a4, letter, legal
	Author     string        // MDPDF_AUTHOR: PDF author
	Workers    int           // MDPDF_WORKERS: parallel workers
}

// knownEnvVars lists valid MDPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDPDF_CONFIG":     true,
	"MDPDF_FONT":       true,
	"MDPDF_TIMEOUT":    true,
	"MDPDF_INPUT_DIR":  true,
	"MDPDF_OUTPUT_DIR": true,
	"MDPDF_PAGE_SIZE":  true,
	"MDPDF_AUTHOR":     true,
	"MDPDF_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric or duration values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDPDF_CONFIG"),
		Font:       getenv("MDPDF_FONT"),
		InputDir:   getenv("MDPDF_INPUT_DIR"),
		OutputDir:  getenv("MDPDF_OUTPUT_DIR"),
		PageSize:   getenv("MDPDF_PAGE_SIZE"),
		Author:     getenv("MDPDF_AUTHOR"),
	}

	if timeout := getenv("MDPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("MDPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDPDF_* variables.
// Helps catch typos like MDPDF_FONTS instead of MDPDF_FONT.
func warnUnknownEnvVars(environ []string, log zerolog.Logger) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			log.Warn().Str("var", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Unset variables leave the config untouched. CLI flags are applied later
// via mergeFlags, giving: flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Font != "" {
		cfg.Font.Source = env.Font
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
