package main

import (
	"fmt"

	"github.com/alnah/go-mdpdf/internal/yamlutil"
)

// runConfigCommand prints the effective configuration as YAML.
// CLI conversion flags are not part of it.
func runConfigCommand(args []string, env *Environment) error {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: config takes no arguments, got %q", ErrUsage, positional[0])
	}

	log := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), log)

	cfg, err := resolveConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
