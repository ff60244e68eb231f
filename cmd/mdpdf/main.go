package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdpdf"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names.
var commands = []string{"convert", "text", "config", "version", "help"}

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a subcommand and returns the process exit code.
// A first argument that is not a command but looks like input runs convert.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) && looksLikeInput(cmd) {
		cmd, rest = "convert", args[1:]
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvertCommand(ctx, rest, env)
	case "text":
		err = runText(rest, env)
	case "config":
		err = runConfigCommand(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdpdf %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	// Per-file failures were already reported by the batch printer.
	if !errors.Is(err, ErrConversionFailed) {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// looksLikeInput reports whether arg is a convert flag, a Markdown file or a directory.
func looksLikeInput(arg string) bool {
	if strings.HasPrefix(arg, "-") && arg != "-h" && arg != "--help" && arg != "--version" {
		return true
	}
	if mdpdf.IsMarkdownFile(arg) {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}
