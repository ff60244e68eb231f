package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/config"
)

// runConvertCommand parses flags, resolves configuration and converts the
// input file or directory through a converter pool.
func runConvertCommand(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	log := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	if env.MaxProcs != nil {
		undo, err := env.MaxProcs(func(format string, a ...any) {
			log.Debug().Msgf(format, a...)
		})
		if err != nil {
			log.Debug().Err(err).Msg("GOMAXPROCS left unchanged")
		} else {
			defer undo()
		}
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), log)

	cfg, err := resolveConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}

	if timeout := resolveTimeout(flags, envCfg); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	size := mdpdf.ResolvePoolSize(cfg.Workers)
	pool := mdpdf.NewConverterPool(size, converterOptions(cfg, env)...)
	defer func() { _ = pool.Close() }()

	log.Debug().
		Int("workers", size).
		Str("font", fontSource(cfg)).
		Str("page", fmt.Sprintf("%s/%s", pageSize(cfg), pageOrientation(cfg))).
		Msg("converter pool ready")

	return runConvert(ctx, positional, flags, cfg, &poolAdapter{pool: pool}, env, log)
}

// runConvert discovers input files, converts them and prints the results.
// Returns ErrConversionFailed wrapping every per-file error when any file fails.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, cfg *config.Config, pool Pool, env *Environment, log zerolog.Logger) error {
	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}
	log.Debug().Int("files", len(files)).Str("input", inputPath).Msg("discovered input")

	params := &conversionParams{
		htmlOutput: flags.outputMode.html,
		htmlOnly:   flags.outputMode.htmlOnly,
	}

	start := time.Now()
	results := convertBatch(ctx, pool, files, params)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		log.Debug().
			Str("file", r.InputPath).
			Int("elements", r.Elements).
			Int("pages", r.Pages).
			Dur("took", r.Duration).
			Msg("converted")
	}
	log.Debug().Dur("took", time.Since(start)).Msg("batch finished")

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		errs := make([]error, 0, failed)
		for _, r := range results {
			if r.Err != nil {
				errs = append(errs, r.Err)
			}
		}
		return fmt.Errorf("%w: %d of %d file(s): %w", ErrConversionFailed, failed, len(results), errors.Join(errs...))
	}

	return nil
}

// resolveConfig loads the config named by the flag or MDPDF_CONFIG and
// applies environment overrides. No name means built-in defaults.
func resolveConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags applies CLI flag values over the config (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.font != "" {
		cfg.Font.Source = flags.font
	}

	// Page flags
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}

	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
}

// resolveTimeout returns the overall timeout: flag > env > none.
func resolveTimeout(flags *convertFlags, envCfg *envConfig) time.Duration {
	if flags.timeout > 0 {
		return flags.timeout
	}
	return envCfg.Timeout
}

// resolveInputPath determines the input from positional args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// converterOptions translates the effective config into converter options.
func converterOptions(cfg *config.Config, env *Environment) []mdpdf.Option {
	return []mdpdf.Option{
		mdpdf.WithFont(cfg.Font.Source),
		mdpdf.WithPage(buildPageSettings(cfg)),
		mdpdf.WithStyle(buildStyle(cfg.Typography)),
		mdpdf.WithDocumentInfo(cfg.Document.Title, cfg.Document.Author),
		mdpdf.WithCreator("mdpdf " + Version),
		mdpdf.WithClock(env.Now),
	}
}

// buildPageSettings fills unset page fields with defaults.
func buildPageSettings(cfg *config.Config) *mdpdf.PageSettings {
	page := mdpdf.DefaultPageSettings()
	page.Size = pageSize(cfg)
	page.Orientation = pageOrientation(cfg)
	if cfg.Page.Margin > 0 {
		page.Margin = cfg.Page.Margin
	}
	return page
}

func pageSize(cfg *config.Config) string {
	if cfg.Page.Size != "" {
		return cfg.Page.Size
	}
	return mdpdf.PageSizeA4
}

func pageOrientation(cfg *config.Config) string {
	if cfg.Page.Orientation != "" {
		return cfg.Page.Orientation
	}
	return mdpdf.OrientationPortrait
}

func fontSource(cfg *config.Config) string {
	if cfg.Font.Source != "" {
		return cfg.Font.Source
	}
	return mdpdf.DefaultFont
}

// buildStyle overlays typography overrides on the default style.
// The code override applies to both inline code and code blocks.
func buildStyle(t config.TypographyConfig) mdpdf.Style {
	style := mdpdf.DefaultStyle()
	overrideKind(&style.H1, t.H1)
	overrideKind(&style.H2, t.H2)
	overrideKind(&style.H3, t.H3)
	overrideKind(&style.Paragraph, t.Paragraph)
	overrideKind(&style.ListItem, t.ListItem)
	overrideKind(&style.Code, t.Code)
	if t.Bullet != "" {
		style.Bullet = t.Bullet
	}
	return style
}

// overrideKind copies the set fields of kc into ks.
// An explicit zero spacing is applied.
func overrideKind(ks *mdpdf.KindStyle, kc config.KindConfig) {
	if kc.Size > 0 {
		ks.Size = kc.Size
	}
	if kc.Spacing != nil {
		ks.SpaceBefore = *kc.Spacing
	}
	if kc.LineHeight > 0 {
		ks.LineHeight = kc.LineHeight
	}
}
